package slack

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

type BotSettings struct {
	Token string
	// APIURL overrides the Slack Web API URL, it must end with a slash.
	APIURL string
}

type Logger interface {
	Debug(s string)
}

// Bot uses the Slack Web API with a bot token.
type Bot struct {
	api        *slack.Client
	tokenLast4 string
	logger     Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewBot(settings BotSettings, client *http.Client, logger Logger) (bot *Bot, err error) {
	if settings.Token == "" {
		return nil, fmt.Errorf("%w: token is not set", errors.ErrValidation)
	}

	options := []slack.Option{slack.OptionHTTPClient(client)}
	if settings.APIURL != "" {
		options = append(options, slack.OptionAPIURL(settings.APIURL))
	}

	tokenLast4 := settings.Token
	const lastCharacters = 4
	if len(tokenLast4) > lastCharacters {
		tokenLast4 = tokenLast4[len(tokenLast4)-lastCharacters:]
	}

	return &Bot{
		api:        slack.New(settings.Token, options...),
		tokenLast4: tokenLast4,
		logger:     logger,
		sleep:      sleep,
	}, nil
}

func (b *Bot) String() string {
	return "slack bot (token ..." + b.tokenLast4 + ")"
}

// Channels returns the channels visible to the bot.
func (b *Bot) Channels(ctx context.Context) (channels []slack.Channel, err error) {
	params := &slack.GetConversationsParameters{ExcludeArchived: true}
	for {
		page, nextCursor, err := b.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("listing channels: %w", wrapError(err))
		}
		channels = append(channels, page...)
		if nextCursor == "" {
			return channels, nil
		}
		params.Cursor = nextCursor
	}
}

// Users pages through all the workspace users and returns the
// active human users, excluding deleted and bot accounts.
func (b *Bot) Users(ctx context.Context) (users []slack.User, err error) {
	const pageSize = 200
	page := b.api.GetUsersPaginated(slack.GetUsersOptionLimit(pageSize))
	for {
		next, err := page.Next(ctx)
		var rateLimitedErr *slack.RateLimitedError
		switch {
		case page.Done(err):
			return users, nil
		case stderrors.As(err, &rateLimitedErr):
			b.logger.Debug(fmt.Sprintf("listing users: waiting %s before retrying",
				rateLimitedErr.RetryAfter))
			err = b.sleep(ctx, rateLimitedErr.RetryAfter)
			if err != nil {
				return nil, fmt.Errorf("waiting before retrying: %w", err)
			}
			continue
		case err != nil:
			return nil, fmt.Errorf("listing users: %w", wrapError(err))
		}

		page = next
		for _, user := range page.Users {
			if user.Deleted || user.IsBot {
				continue
			}
			users = append(users, user)
		}
	}
}

// UserID returns the ID of the active user with the given username.
func (b *Bot) UserID(ctx context.Context, username string) (id string, err error) {
	users, err := b.Users(ctx)
	if err != nil {
		return "", err
	}

	for _, user := range users {
		if user.Name == username {
			return user.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUserNotFound, username)
}

// SendToChannel posts the message to the channel, which the bot must
// be a member of.
func (b *Bot) SendToChannel(ctx context.Context, channelID, message string) (err error) {
	_, _, err = b.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("posting message to channel %s: %w", channelID, wrapError(err))
	}
	return nil
}

// SendDirect opens a direct message conversation with the user
// and posts the message in it.
func (b *Bot) SendDirect(ctx context.Context, username, message string) (err error) {
	userID, err := b.UserID(ctx, username)
	if err != nil {
		return fmt.Errorf("resolving user ID: %w", err)
	}

	channel, _, _, err := b.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return fmt.Errorf("opening conversation with %s: %w", username, wrapError(err))
	}

	return b.SendToChannel(ctx, channel.ID, message)
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
