package bot

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is an outbound-only Telegram client used to mirror logs into a channel.
type Bot struct {
	Client *tgbotapi.BotAPI
	name   string
	mu     sync.Mutex
}

// New creates a bot against the public Telegram API.
func New(name, token string) (*Bot, error) {
	return NewWithEndpoint(name, token, tgbotapi.APIEndpoint)
}

// NewWithEndpoint creates a bot against a custom API endpoint, formatted like
// tgbotapi.APIEndpoint.
func NewWithEndpoint(name, token, endpoint string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize %s bot: %w", name, err)
	}

	return &Bot{
		Client: botClient,
		name:   name,
	}, nil
}

// Name returns the label the bot was created with.
func (b *Bot) Name() string { return b.name }

func (b *Bot) SendMessage(chatID int64, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	_, err := b.Client.Send(msg)
	return err
}
