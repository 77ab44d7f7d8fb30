package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"quidque.com/discord-votebot/internal/commands"
	"quidque.com/discord-votebot/internal/config"
	"quidque.com/discord-votebot/internal/logger"
)

const (
	MsgShuttingDown  = "Bot is shutting down, commands are temporarily disabled."
	MsgNoPrivateChat = "No private chat at the moment."
)

// Client connects the command router to a Discord gateway session.
type Client struct {
	session *discordgo.Session
	router  *commands.Router

	botName   string
	channelID string

	commandsEnabled bool
	mu              sync.RWMutex
}

func NewClient(cfg config.Config, router *commands.Router) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord token is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	client := newClient(router, cfg.BotName, cfg.ChannelID)
	client.session = session

	session.AddHandler(client.handleReady)
	session.AddHandler(client.handleMessageCreate)

	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	return client, nil
}

func newClient(router *commands.Router, botName, channelID string) *Client {
	return &Client{
		router:          router,
		botName:         botName,
		channelID:       channelID,
		commandsEnabled: true,
	}
}

func (c *Client) Connect() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	logger.Info.Println("Connected to Discord")
	return nil
}

func (c *Client) Name() string {
	return "discord client"
}

func (c *Client) Shutdown(ctx context.Context) error {
	c.SetShuttingDown(true)

	done := make(chan error, 1)
	go func() {
		done <- c.session.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to close Discord session: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetShuttingDown stops the client from executing further commands.
func (c *Client) SetShuttingDown(shutting bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commandsEnabled = !shutting
}

func (c *Client) IsCommandsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.commandsEnabled
}
