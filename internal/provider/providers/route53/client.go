package route53

import (
	"context"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/ykanggit/goDaddy-API/internal/awsclient"
	"github.com/ykanggit/goDaddy-API/internal/domain"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

const DefaultTTL = 300 * time.Second

type Settings struct {
	// ZoneName is the hosted zone name. It defaults to the
	// registered domain of the hostname.
	ZoneName string
	TTL      time.Duration
}

type Logger interface {
	Debug(s string)
}

// Client manages the A records of a Route 53 hosted zone.
type Client struct {
	api      API
	zoneName string
	ttl      time.Duration
	logger   Logger
	timeNow  func() time.Time
}

func New(settings Settings, api API, logger Logger) (c *Client, err error) {
	if settings.ZoneName != "" {
		err = domain.CheckDomain(domain.Normalize(settings.ZoneName))
		if err != nil {
			return nil, fmt.Errorf("%w: zone name: %w", errors.ErrValidation, err)
		}
	}
	if settings.TTL == 0 {
		settings.TTL = DefaultTTL
	}
	return &Client{
		api:      api,
		zoneName: domain.Normalize(settings.ZoneName),
		ttl:      settings.TTL,
		logger:   logger,
		timeNow:  time.Now,
	}, nil
}

func (c *Client) String() string {
	return "Route 53"
}

// validate checks the hostname and returns it as a fully qualified
// name together with the zone name to use.
func (c *Client) validate(hostname string) (fqdn, zoneName string, err error) {
	name, err := domain.Split(hostname)
	if err != nil {
		return "", "", err
	}
	zoneName = c.zoneName
	if zoneName == "" {
		zoneName = name.Registered
	}
	hostname = name.String()
	if hostname != zoneName && !strings.HasSuffix(hostname, "."+zoneName) {
		return "", "", fmt.Errorf("%w: %s is not in zone %s",
			errors.ErrValidation, hostname, zoneName)
	}
	return hostname + ".", zoneName, nil
}

// zoneID returns the ID of the hosted zone with the given name,
// paging through all the hosted zones of the account.
func (c *Client) zoneID(ctx context.Context, zoneName string) (id string, err error) {
	fqdn := zoneName + "."
	paginator := route53.NewListHostedZonesPaginator(c.api, &route53.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("listing hosted zones: %w", awsclient.WrapError(err))
		}
		for _, zone := range output.HostedZones {
			if aws.ToString(zone.Name) != fqdn {
				continue
			}
			id = aws.ToString(zone.Id)
			id = id[strings.LastIndex(id, "/")+1:]
			c.logger.Debug("hosted zone " + zoneName + " has ID " + id)
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %w: %s", errors.ErrValidation, errors.ErrZoneNotFound, zoneName)
}

// recordSet returns the A record set of the fully qualified name,
// or nil if there is none.
func (c *Client) recordSet(ctx context.Context, zoneID, fqdn string) (
	recordSet *types.ResourceRecordSet, err error) {
	output, err := c.api.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(zoneID),
		StartRecordName: aws.String(fqdn),
		StartRecordType: types.RRTypeA,
		MaxItems:        aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("listing record sets: %w", awsclient.WrapError(err))
	}

	// Record sets are listed starting from the requested name and type,
	// so the first one is another record when ours does not exist.
	for _, set := range output.ResourceRecordSets {
		if set.Type == types.RRTypeA && strings.EqualFold(aws.ToString(set.Name), fqdn) {
			return &set, nil
		}
	}
	return nil, nil //nolint:nilnil
}

func (c *Client) Records(ctx context.Context, hostname string) (
	records []models.DNSRecord, err error) {
	fqdn, zoneName, err := c.validate(hostname)
	if err != nil {
		return nil, err
	}

	zoneID, err := c.zoneID(ctx, zoneName)
	if err != nil {
		return nil, err
	}

	set, err := c.recordSet(ctx, zoneID, fqdn)
	if err != nil {
		return nil, err
	} else if set == nil {
		return nil, nil
	}

	ttl := time.Duration(aws.ToInt64(set.TTL)) * time.Second
	records = make([]models.DNSRecord, len(set.ResourceRecords))
	for i, resourceRecord := range set.ResourceRecords {
		value := aws.ToString(resourceRecord.Value)
		ip, err := netip.ParseAddr(value)
		if err != nil || !ip.Is4() {
			return nil, fmt.Errorf("%w: %w: %q",
				errors.ErrProvider, errors.ErrIPReceivedMalformed, value)
		}
		records[i] = models.DNSRecord{
			Name:  strings.TrimSuffix(fqdn, "."),
			Type:  models.RecordTypeA,
			Value: ip,
			TTL:   ttl,
		}
	}
	return records, nil
}

func (c *Client) PublishedIP(ctx context.Context, hostname string) (
	ip netip.Addr, found bool, err error) {
	records, err := c.Records(ctx, hostname)
	if err != nil {
		return ip, false, err
	} else if len(records) == 0 {
		return ip, false, nil
	}
	return records[0].Value, true, nil
}

// UpsertA creates or replaces the A record set of the hostname
// with the given IP address in a single change batch.
func (c *Client) UpsertA(ctx context.Context, hostname string, ip netip.Addr) (
	record models.DNSRecord, err error) {
	fqdn, zoneName, err := c.validate(hostname)
	if err != nil {
		return record, err
	}
	err = domain.CheckIPv4(ip)
	if err != nil {
		return record, err
	}
	ip = ip.Unmap()

	zoneID, err := c.zoneID(ctx, zoneName)
	if err != nil {
		return record, err
	}

	recordSet := types.ResourceRecordSet{
		Name:            aws.String(fqdn),
		Type:            types.RRTypeA,
		TTL:             aws.Int64(int64(c.ttl.Seconds())),
		ResourceRecords: []types.ResourceRecord{{Value: aws.String(ip.String())}},
	}
	comment := "Updated at " + c.timeNow().UTC().Format(time.RFC3339)
	err = c.change(ctx, zoneID, types.ChangeActionUpsert, recordSet, comment)
	if err != nil {
		return record, err
	}

	return models.DNSRecord{
		Name:  strings.TrimSuffix(fqdn, "."),
		Type:  models.RecordTypeA,
		Value: ip,
		TTL:   c.ttl,
	}, nil
}

// DeleteA deletes the A record set of the hostname, doing nothing
// if there is no such record set.
func (c *Client) DeleteA(ctx context.Context, hostname string, confirmed bool) (err error) {
	fqdn, zoneName, err := c.validate(hostname)
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("%w: %w: deleting A records of %s",
			errors.ErrValidation, errors.ErrNotConfirmed, strings.TrimSuffix(fqdn, "."))
	}

	zoneID, err := c.zoneID(ctx, zoneName)
	if err != nil {
		return err
	}

	set, err := c.recordSet(ctx, zoneID, fqdn)
	if err != nil {
		return err
	} else if set == nil {
		c.logger.Debug("A record set of " + fqdn + " is already absent")
		return nil
	}

	comment := "Deleted at " + c.timeNow().UTC().Format(time.RFC3339)
	return c.change(ctx, zoneID, types.ChangeActionDelete, *set, comment)
}

func (c *Client) change(ctx context.Context, zoneID string, action types.ChangeAction,
	recordSet types.ResourceRecordSet, comment string) (err error) {
	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{{
				Action:            action,
				ResourceRecordSet: &recordSet,
			}},
			Comment: aws.String(comment),
		},
	}

	output, err := c.api.ChangeResourceRecordSets(ctx, input)
	if err != nil {
		return fmt.Errorf("changing record sets: %w", awsclient.WrapError(err))
	}
	if output.ChangeInfo != nil {
		c.logger.Debug(fmt.Sprintf("change %s is %s",
			aws.ToString(output.ChangeInfo.Id), output.ChangeInfo.Status))
	}
	return nil
}
