package dns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
	"github.com/ykanggit/goDaddy-API/internal/domain"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

var (
	ErrAnswerNotReceived   = errors.New("response answer not received")
	ErrAnswerTypeMismatch  = errors.New("answer type is not expected")
	ErrRecordEmpty         = errors.New("record is empty")
	ErrTooManyRecords      = errors.New("too many records")
	ErrResponseCodeFailure = errors.New("response code is not success")
)

func fetch(ctx context.Context, client Client, providerData providerData) (
	publicIP netip.Addr, err error) {
	message := new(dns.Msg)
	message.SetQuestion(providerData.fqdn, providerData.qType)
	message.Question[0].Qclass = providerData.class

	response, _, err := client.ExchangeContext(ctx, message, providerData.address)
	if err != nil {
		return publicIP, fmt.Errorf("%w: %w", ddnserrors.ErrNetwork, err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return publicIP, fmt.Errorf("%w: %w: %w: %s", ddnserrors.ErrNetwork,
			ddnserrors.ErrProvider, ErrResponseCodeFailure, dns.RcodeToString[response.Rcode])
	}

	switch len(response.Answer) {
	case 0:
		return publicIP, fmt.Errorf("%w: %w", ddnserrors.ErrParse, ErrAnswerNotReceived)
	case 1:
	default:
		return publicIP, fmt.Errorf("%w: %w: %d instead of 1",
			ddnserrors.ErrParse, ErrTooManyRecords, len(response.Answer))
	}

	var value string
	switch answer := response.Answer[0].(type) {
	case *dns.A:
		value = answer.A.String()
	case *dns.TXT:
		switch len(answer.Txt) {
		case 0:
			return publicIP, fmt.Errorf("%w: %w", ddnserrors.ErrParse, ErrRecordEmpty)
		case 1:
			value = answer.Txt[0]
		default:
			return publicIP, fmt.Errorf("%w: %w: %d instead of 1",
				ddnserrors.ErrParse, ErrTooManyRecords, len(answer.Txt))
		}
	default:
		return publicIP, fmt.Errorf("%w: %w: %T", ddnserrors.ErrParse,
			ErrAnswerTypeMismatch, answer)
	}

	publicIP, err = domain.ParseIPv4(value)
	if err != nil {
		return publicIP, fmt.Errorf("%w: %q is not an IPv4 address", ddnserrors.ErrParse, value)
	}
	return publicIP, nil
}
