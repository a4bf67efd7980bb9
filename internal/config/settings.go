package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Target   Target
	PubIP    PubIP
	Resolver Resolver
	GoDaddy  GoDaddy
	AWS      AWS
	Scan     Scan
	Slack    Slack
	Shoutrrr Shoutrrr
	Syslog   Syslog
	Health   Health
	Logger   Logger
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Target.setDefaults()
	c.PubIP.setDefaults()
	c.Resolver.setDefaults()
	c.GoDaddy.setDefaults()
	c.AWS.setDefaults()
	c.Scan.setDefaults()
	c.Slack.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Syslog.setDefaults()
	c.Health.setDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"target":    &c.Target,
		"public ip": &c.PubIP,
		"resolver":  &c.Resolver,
		"godaddy":   &c.GoDaddy,
		"aws":       &c.AWS,
		"scan":      &c.Scan,
		"slack":     &c.Slack,
		"shoutrrr":  &c.Shoutrrr,
		"syslog":    &c.Syslog,
		"health":    &c.Health,
		"logger":    &c.Logger,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Target.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Resolver.toLinesNode())
	node.AppendNode(c.GoDaddy.toLinesNode())
	node.AppendNode(c.AWS.toLinesNode())
	node.AppendNode(c.Scan.toLinesNode())
	node.AppendNode(c.Slack.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	node.AppendNode(c.Syslog.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Target.read(reader)
	if err != nil {
		return fmt.Errorf("reading target settings: %w", err)
	}

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	c.GoDaddy.read(reader)
	c.AWS.read(reader)

	err = c.Scan.read(reader)
	if err != nil {
		return fmt.Errorf("reading scan settings: %w", err)
	}

	c.Slack.read(reader, warner)
	c.Shoutrrr.read(reader)

	err = c.Syslog.read(reader)
	if err != nil {
		return fmt.Errorf("reading syslog settings: %w", err)
	}

	c.Health.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
