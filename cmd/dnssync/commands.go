package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/qdm12/log"
	"github.com/ykanggit/goDaddy-API/internal/awsclient"
	"github.com/ykanggit/goDaddy-API/internal/compute"
	"github.com/ykanggit/goDaddy-API/internal/config"
	"github.com/ykanggit/goDaddy-API/internal/domain"
	"github.com/ykanggit/goDaddy-API/internal/lookup"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/notify"
	"github.com/ykanggit/goDaddy-API/internal/provider"
	"github.com/ykanggit/goDaddy-API/internal/provider/constants"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/godaddy"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/route53"
	"github.com/ykanggit/goDaddy-API/internal/publicip"
	publicdns "github.com/ykanggit/goDaddy-API/internal/publicip/dns"
	publichttp "github.com/ykanggit/goDaddy-API/internal/publicip/http"
	"github.com/ykanggit/goDaddy-API/internal/reconcile"
	"github.com/ykanggit/goDaddy-API/internal/scan"
)

const (
	commandReconcile = "reconcile"
	commandGet       = "get"
	commandSet       = "set"
	commandDelete    = "delete"
	commandAvailable = "available"
	commandScan      = "scan"
	commandRotateIP  = "rotate-ip"
	commandNotify    = "notify"
)

var (
	ErrArgumentsCount = errors.New("wrong number of arguments")
	ErrNoNotifier     = errors.New("no notifier is configured")
)

type commands struct {
	config       config.Config
	client       *http.Client
	logger       log.LoggerInterface
	notifier     *notify.Notifier
	timeNow      func() time.Time
	stdout       io.Writer
	confirmation confirmation
}

func (c *commands) run(ctx context.Context, command string, args []string) (err error) {
	switch command {
	case commandReconcile:
		return c.reconcile(ctx)
	case commandGet:
		return c.get(ctx)
	case commandSet:
		return c.set(ctx, args)
	case commandDelete:
		return c.delete(ctx, args)
	case commandAvailable:
		return c.available(ctx, args)
	case commandScan:
		return c.scan(ctx)
	case commandRotateIP:
		return c.rotateIP(ctx)
	case commandNotify:
		return c.notify(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrCommandUnknown, command)
	}
}

func (c *commands) hostname() (hostname string, err error) {
	if c.config.Target.Hostname == "" {
		return "", fmt.Errorf("%w: %w: TARGET_HOSTNAME",
			ddnserrors.ErrValidation, ddnserrors.ErrHostnameNotSet)
	}
	return c.config.Target.Hostname, nil
}

func (c *commands) reconcile(ctx context.Context) (err error) {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	event, err := runner.Run(ctx)
	if err != nil {
		c.notifier.Send(ctx, event.String())
		return err
	}
	return nil
}

func (c *commands) get(ctx context.Context) (err error) {
	hostname, err := c.hostname()
	if err != nil {
		return err
	}

	dnsProvider, err := c.newProvider(ctx)
	if err != nil {
		return err
	}

	return printRecords(ctx, c.stdout, dnsProvider, hostname)
}

func (c *commands) set(ctx context.Context, args []string) (err error) {
	if len(args) != 1 {
		return fmt.Errorf("%w: set takes one IPv4 address, got %d arguments",
			ErrArgumentsCount, len(args))
	}

	ip, err := domain.ParseIPv4(args[0])
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	_, err = runner.Apply(ctx, ip)
	return err
}

func (c *commands) delete(ctx context.Context, args []string) (err error) {
	yes, err := parseYesFlag(commandDelete, args)
	if err != nil {
		return err
	}

	hostname, err := c.hostname()
	if err != nil {
		return err
	}

	dnsProvider, err := c.newProvider(ctx)
	if err != nil {
		return err
	}

	confirmed, err := c.confirmation.confirm(yes,
		"Delete the A record set of "+hostname+" at "+dnsProvider.String()+"?")
	if err != nil {
		return err
	}

	err = dnsProvider.DeleteA(ctx, hostname, confirmed)
	if err != nil {
		return fmt.Errorf("deleting A record set: %w", err)
	}
	c.logger.Info("A record set of " + hostname + " deleted")
	return nil
}

func (c *commands) available(ctx context.Context, args []string) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("%w: available takes at least one domain name",
			ErrArgumentsCount)
	}

	registrar, err := c.newGoDaddy()
	if err != nil {
		return err
	}

	return printAvailability(ctx, c.stdout, registrar, args)
}

func (c *commands) scan(ctx context.Context) (err error) {
	registrar, err := c.newGoDaddy()
	if err != nil {
		return err
	}

	scanner := scan.New(c.config.Scan.ToSettings(), registrar, c.notifier,
		c.logger.New(log.SetComponent("scan")))
	available, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scanning domain names: %w", err)
	}

	fmt.Fprintln(c.stdout, scan.Message(c.config.Scan.ToSettings(), available))
	return nil
}

func (c *commands) rotateIP(ctx context.Context) (err error) {
	awsConfig, err := c.loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	rotator := compute.NewRotator(compute.NewAPI(awsConfig),
		c.logger.New(log.SetComponent("ec2")))
	rotation, err := rotator.Rotate(ctx, c.config.AWS.InstanceName)
	if err != nil {
		err = fmt.Errorf("rotating elastic IP address: %w", err)
		c.notifier.Send(ctx, err.Error())
		return err
	}

	c.notifier.Send(ctx, fmt.Sprintf("Elastic IP address of instance %s rotated from %s to %s",
		rotation.InstanceID, ipString(rotation.OldIP), rotation.NewIP))

	if c.config.Target.Hostname == "" {
		c.logger.Warn("target hostname is not set, the A record is not updated")
		return nil
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	event, err := runner.Apply(ctx, rotation.NewIP)
	if err != nil {
		c.notifier.Send(ctx, event.String())
		return err
	}
	return nil
}

func (c *commands) notify(ctx context.Context, args []string) (err error) {
	if !c.notifier.Enabled() {
		return fmt.Errorf("%w", ErrNoNotifier)
	}

	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return fmt.Errorf("%w: notify takes a message", ErrArgumentsCount)
	}

	c.notifier.Send(ctx, message)
	return nil
}

func (c *commands) newGoDaddy() (client *godaddy.Client, err error) {
	settings := godaddy.Settings{
		Key:     c.config.GoDaddy.Key,
		Secret:  c.config.GoDaddy.Secret,
		BaseURL: c.config.GoDaddy.BaseURL,
		TTL:     c.config.Target.TTL,
	}
	client, err = godaddy.New(settings, c.client, c.logger.New(log.SetComponent("godaddy")))
	if err != nil {
		return nil, fmt.Errorf("creating GoDaddy client: %w", err)
	}
	return client, nil
}

func (c *commands) loadAWSConfig(ctx context.Context) (awsConfig aws.Config, err error) {
	settings := awsclient.Settings{
		Profile:         c.config.AWS.Profile,
		AccessKeyID:     c.config.AWS.AccessKeyID,
		SecretAccessKey: c.config.AWS.SecretAccessKey,
		Region:          c.config.AWS.Region,
	}
	return awsclient.LoadConfig(ctx, settings, c.client)
}

//nolint:ireturn
func (c *commands) newProvider(ctx context.Context) (dnsProvider provider.Provider, err error) {
	settings := provider.Settings{
		Name: c.config.Target.Provider,
		GoDaddy: godaddy.Settings{
			Key:     c.config.GoDaddy.Key,
			Secret:  c.config.GoDaddy.Secret,
			BaseURL: c.config.GoDaddy.BaseURL,
			TTL:     c.config.Target.TTL,
		},
		Route53: route53.Settings{
			ZoneName: c.config.AWS.HostedZone,
			TTL:      c.config.Target.TTL,
		},
	}

	var awsConfig aws.Config
	if settings.Name == constants.Route53 {
		awsConfig, err = c.loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
	}

	dnsProvider, err = provider.New(settings, c.client, awsConfig,
		c.logger.New(log.SetComponent(string(settings.Name))))
	if err != nil {
		return nil, fmt.Errorf("creating DNS provider: %w", err)
	}
	return dnsProvider, nil
}

func (c *commands) newPublicIPFetcher() (fetcher *publicip.Chain, err error) {
	fetchers := make([]publicip.Fetcher, 0, len(c.config.PubIP.Fetchers))
	for _, kind := range c.config.PubIP.Fetchers {
		switch kind {
		case config.FetcherHTTP:
			httpFetcher, err := publichttp.New(c.client, c.config.PubIP.HTTPProviderValues())
			if err != nil {
				return nil, fmt.Errorf("creating HTTP public IP fetcher: %w", err)
			}
			fetchers = append(fetchers, httpFetcher)
		case config.FetcherDNS:
			dnsFetcher, err := publicdns.New(c.config.PubIP.DNSProviderValues(),
				c.config.PubIP.DNSTimeout)
			if err != nil {
				return nil, fmt.Errorf("creating DNS public IP fetcher: %w", err)
			}
			fetchers = append(fetchers, dnsFetcher)
		}
	}
	return publicip.NewChain(fetchers, c.logger.New(log.SetComponent("public ip"))), nil
}

func (c *commands) newRunner(ctx context.Context) (runner *reconcile.Runner, err error) {
	hostname, err := c.hostname()
	if err != nil {
		return nil, err
	}

	dnsProvider, err := c.newProvider(ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := c.newPublicIPFetcher()
	if err != nil {
		return nil, err
	}

	var published reconcile.PublishedIPResolver = dnsProvider
	if c.config.Target.PublishedIPSource == config.SourceDNS {
		published = lookup.New(*c.config.Resolver.Address, c.config.Resolver.Timeout,
			c.logger.New(log.SetComponent("resolver")))
	}

	settings := reconcile.Settings{
		Hostname: hostname,
		Confirm:  *c.config.Target.Confirm,
	}
	return reconcile.NewRunner(settings, fetcher, published, dnsProvider, c.notifier,
		c.logger.New(log.SetComponent("reconcile")), c.timeNow), nil
}

type recordsLister interface {
	Records(ctx context.Context, hostname string) (records []models.DNSRecord, err error)
}

func printRecords(ctx context.Context, w io.Writer, lister recordsLister,
	hostname string) (err error) {
	records, err := lister.Records(ctx, hostname)
	if err != nil {
		return fmt.Errorf("getting A records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "no A record published for "+hostname)
		return nil
	}

	for _, record := range records {
		fmt.Fprintln(w, record.String())
	}
	return nil
}

func printAvailability(ctx context.Context, w io.Writer,
	checker scan.AvailabilityChecker, domainNames []string) (err error) {
	for _, domainName := range domainNames {
		available, err := checker.IsAvailable(ctx, domainName)
		if err != nil {
			return fmt.Errorf("checking availability of %s: %w", domainName, err)
		}

		status := "not available"
		if available {
			status = "available"
		}
		fmt.Fprintln(w, domainName+": "+status)
	}
	return nil
}

func ipString(ip netip.Addr) string {
	if !ip.IsValid() {
		return "none"
	}
	return ip.String()
}
