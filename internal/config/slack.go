package config

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Slack struct {
	WebhookURL string
	Token      string
	Channel    string
	DMUser     string
	APIURL     string
}

func (s *Slack) setDefaults() {}

func (s Slack) Validate() (err error) {
	for name, value := range map[string]string{
		"webhook URL": s.WebhookURL,
		"API URL":     s.APIURL,
	} {
		if value == "" {
			continue
		}
		_, err = url.ParseRequestURI(value)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", name, ErrURLNotValid, err)
		}
	}
	return nil
}

func (s Slack) String() string {
	return s.toLinesNode().String()
}

func (s Slack) toLinesNode() *gotree.Node {
	if s.WebhookURL == "" && s.Token == "" {
		return gotree.New("Slack: disabled")
	}

	node := gotree.New("Slack")
	if s.WebhookURL != "" {
		node.Appendf("Webhook URL: %s", obfuscate(s.WebhookURL))
	}
	if s.Token != "" {
		node.Appendf("Bot token: %s", obfuscate(s.Token))
		if s.Channel != "" {
			node.Appendf("Channel: %s", s.Channel)
		}
		if s.DMUser != "" {
			node.Appendf("Direct message user: %s", s.DMUser)
		}
	}
	return node
}

func (s *Slack) read(r *reader.Reader, warner Warner) {
	s.WebhookURL = r.String("SLACK_WEBHOOK_URL", reader.ForceLowercase(false))

	s.Token = r.String("SLACK_TOKEN", reader.ForceLowercase(false))
	// Retro-compatibility
	if s.Token == "" {
		oldToken := r.Get("SLACK_4RUNNER_TOKEN", reader.ForceLowercase(false))
		if oldToken != nil {
			handleDeprecated(warner, "SLACK_4RUNNER_TOKEN", "SLACK_TOKEN")
			s.Token = *oldToken
		}
	}

	s.Channel = r.String("SLACK_CHANNEL", reader.ForceLowercase(false))
	s.DMUser = r.String("SLACK_DM_USER")
	s.APIURL = r.String("SLACK_API_URL", reader.ForceLowercase(false))
}
