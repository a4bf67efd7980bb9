package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

var (
	ErrDomainTooLong          = errors.New("domain name is too long")
	ErrDomainLabelEmpty       = errors.New("domain label is empty")
	ErrDomainLabelTooLong     = errors.New("domain label is too long")
	ErrDomainInvalidCharacter = errors.New("domain name has invalid character")
	ErrDomainTLDMissing       = errors.New("domain has missing top level domain")
)

const (
	maxNameLength  = 253
	maxLabelLength = 63
)

// CheckDomain returns a non-nil error if name is not a valid hostname
// of at least two labels, following RFC 1034 section 3.5 and RFC 1123
// section 2.1. Letters of any case and a single trailing root dot are
// accepted, as Normalize removes both.
func CheckDomain(name string) (err error) {
	name = strings.TrimSuffix(name, ".")
	switch {
	case name == "":
		return fmt.Errorf("%w", ddnserrors.ErrDomainNotSet)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: %d characters exceeding the maximum of %d",
			ErrDomainTooLong, len(name), maxNameLength)
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("%w: %q", ErrDomainTLDMissing, name)
	}

	for i, label := range labels {
		err = checkLabel(label)
		if err != nil {
			return fmt.Errorf("label %d of %q: %w", i+1, name, err)
		}
	}

	tld := labels[len(labels)-1]
	if tld[0] >= '0' && tld[0] <= '9' {
		return fmt.Errorf("%w: top level domain %q starts with a digit",
			ErrDomainInvalidCharacter, tld)
	}
	return nil
}

func checkLabel(label string) error {
	switch {
	case label == "":
		return ErrDomainLabelEmpty
	case len(label) > maxLabelLength:
		return fmt.Errorf("%w: %d characters exceeding the maximum of %d",
			ErrDomainLabelTooLong, len(label), maxLabelLength)
	case label[0] == '-':
		return fmt.Errorf("%w: starts with '-'", ErrDomainInvalidCharacter)
	case label[len(label)-1] == '-':
		return fmt.Errorf("%w: ends with '-'", ErrDomainInvalidCharacter)
	}

	for i, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-':
			continue
		case r == utf8.RuneError:
			return fmt.Errorf("%w: invalid rune at offset %d", ErrDomainInvalidCharacter, i)
		}
		return fmt.Errorf("%w: %q", ErrDomainInvalidCharacter, r)
	}
	return nil
}
