package slack

import "context"

// ChannelTarget sends messages to a channel with the bot.
type ChannelTarget struct {
	bot       *Bot
	channelID string
}

func (b *Bot) Channel(channelID string) *ChannelTarget {
	return &ChannelTarget{bot: b, channelID: channelID}
}

func (c *ChannelTarget) String() string {
	return c.bot.String() + " channel " + c.channelID
}

func (c *ChannelTarget) Send(ctx context.Context, message string) (err error) {
	return c.bot.SendToChannel(ctx, c.channelID, message)
}

// DirectTarget sends direct messages to a user with the bot.
type DirectTarget struct {
	bot      *Bot
	username string
}

func (b *Bot) Direct(username string) *DirectTarget {
	return &DirectTarget{bot: b, username: username}
}

func (d *DirectTarget) String() string {
	return d.bot.String() + " direct message to " + d.username
}

func (d *DirectTarget) Send(ctx context.Context, message string) (err error) {
	return d.bot.SendDirect(ctx, d.username, message)
}
