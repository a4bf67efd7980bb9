package main

import (
	"net/http"

	"github.com/qdm12/log"
	"github.com/ykanggit/goDaddy-API/internal/config"
	"github.com/ykanggit/goDaddy-API/internal/notify"
	"github.com/ykanggit/goDaddy-API/internal/shoutrrr"
	"github.com/ykanggit/goDaddy-API/internal/slack"
	"github.com/ykanggit/goDaddy-API/internal/syslog"
)

// makeNotifier creates a notifier with every configured sender.
// A sender failing to be created is logged and skipped, since
// notifications must never prevent the command from running.
func makeNotifier(config config.Config, client *http.Client,
	logger log.LoggerInterface) (notifier *notify.Notifier, closeFunc func()) {
	notifyLogger := logger.New(log.SetComponent("notify"))
	var senders []notify.Sender
	closeFunc = func() {}

	if config.Slack.WebhookURL != "" {
		webhook, err := slack.NewWebhook(client, config.Slack.WebhookURL)
		if err != nil {
			notifyLogger.Warn("creating Slack webhook: " + err.Error())
		} else {
			senders = append(senders, webhook)
		}
	}

	if config.Slack.Token != "" {
		bot, err := slack.NewBot(slack.BotSettings{
			Token:  config.Slack.Token,
			APIURL: config.Slack.APIURL,
		}, client, notifyLogger)
		switch {
		case err != nil:
			notifyLogger.Warn("creating Slack bot: " + err.Error())
		case config.Slack.Channel == "" && config.Slack.DMUser == "":
			notifyLogger.Warn("Slack bot token is set but no channel or direct message user is set")
		}
		if err == nil && config.Slack.Channel != "" {
			senders = append(senders, bot.Channel(config.Slack.Channel))
		}
		if err == nil && config.Slack.DMUser != "" {
			senders = append(senders, bot.Direct(config.Slack.DMUser))
		}
	}

	if len(config.Shoutrrr.Addresses) > 0 {
		shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
			Addresses:    config.Shoutrrr.Addresses,
			DefaultTitle: config.Shoutrrr.DefaultTitle,
		})
		if err != nil {
			notifyLogger.Warn("setting up Shoutrrr: " + err.Error())
		} else {
			senders = append(senders, shoutrrrClient)
		}
	}

	if *config.Syslog.Enabled {
		syslogClient, err := syslog.New(syslog.Settings{Tag: config.Syslog.Tag})
		if err != nil {
			notifyLogger.Warn("setting up syslog: " + err.Error())
		} else {
			senders = append(senders, syslogClient)
			closeFunc = func() {
				err := syslogClient.Close()
				if err != nil {
					notifyLogger.Warn("closing syslog: " + err.Error())
				}
			}
		}
	}

	return notify.New(senders, notifyLogger), closeFunc
}
