package shoutrrr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i] = addDefaultTitle(address, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(addresses))
	for i, address := range addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
	}, nil
}

func (c *Client) String() string {
	return "shoutrrr (" + strings.Join(c.serviceNames, ", ") + ")"
}

// Send sends the message to every service. The context is not used
// since shoutrrr does not support cancellation.
func (c *Client) Send(_ context.Context, message string) (err error) {
	errs := c.serviceRouter.Send(message, nil)
	serviceErrs := make([]error, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			serviceErrs = append(serviceErrs, fmt.Errorf("%s: %w", c.serviceNames[i], err))
		}
	}
	return errors.Join(serviceErrs...)
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string) {
	u, err := url.Parse(address)
	if err != nil {
		// address should already be validated
		panic(fmt.Sprintf("parsing address as url: %s", err))
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String()
}
