package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"quidque.com/discord-votebot/internal/commands"
	"quidque.com/discord-votebot/internal/logger"
)

type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// channelReplier delivers router output as plain channel messages.
type channelReplier struct {
	sender messageSender
}

func (r channelReplier) SendReply(target, line string) error {
	_, err := r.sender.ChannelMessageSend(target, line)
	return err
}

func (c *Client) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info.Printf("Bot ready as %s", r.User.Username)

	if err := s.UpdateGameStatus(0, fmt.Sprintf(".%s help", c.botName)); err != nil {
		logger.Warn.Printf("Failed to update status: %v", err)
	}

	c.greet(s)
}

func (c *Client) greet(sender messageSender) {
	if c.channelID == "" {
		return
	}

	greeting := fmt.Sprintf("Hi I'm a poll bot! Do .%s help to find out about me.", c.botName)
	if _, err := sender.ChannelMessageSend(c.channelID, greeting); err != nil {
		logger.Warn.Printf("Failed to greet channel %s: %v", c.channelID, err)
	}
}

func (c *Client) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	c.handleMessage(s, m)
}

func (c *Client) handleMessage(sender messageSender, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if m.GuildID == "" {
		logger.Debug.Printf("Refusing private message from %s", m.Author.ID)
		if _, err := sender.ChannelMessageSend(m.ChannelID, MsgNoPrivateChat); err != nil {
			logger.Error.Printf("Failed to answer private message: %v", err)
		}
		return
	}

	if c.channelID != "" && m.ChannelID != c.channelID {
		return
	}

	if !c.router.Addressed(m.Content) {
		return
	}

	if !c.IsCommandsEnabled() {
		if _, err := sender.ChannelMessageSend(m.ChannelID, MsgShuttingDown); err != nil {
			logger.Error.Printf("Failed to send shutdown notice: %v", err)
		}
		return
	}

	ev := commands.Event{
		SenderIdentity: m.Author.ID,
		SenderName:     m.Author.Username,
		ReplyTarget:    m.ChannelID,
		Text:           m.Content,
	}

	if _, err := c.router.Dispatch(ev, channelReplier{sender: sender}); err != nil {
		logger.Error.Printf("Command from %s in %s failed: %v", m.Author.Username, m.ChannelID, err)
	}
}
