package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/campushub/student-assist-api/internal/models"
)

const (
	msgWelcome         = "Welcome! Please enter your username."
	msgAskPassword     = "Please enter your password."
	msgAuthenticated   = "Authentication successful! You can now use the bot."
	msgBadCredentials  = "Invalid username or password. Please try again."
	msgCanceled        = "Authentication canceled."
	msgNotLoggedIn     = "Please authenticate using /start."
	msgUnknownCommand  = "Unknown command. Use /start to sign in or /cancel to abort."
	msgInternalTrouble = "Something went wrong. Please try again."
)

type sessionStore interface {
	Get(ctx context.Context, userID int64) (*models.BotSession, error)
	Put(ctx context.Context, userID int64, session *models.BotSession) error
	Delete(ctx context.Context, userID int64) error
}

type authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type questionAnswerer interface {
	Ask(ctx context.Context, principal models.Principal, question string) (string, error)
}

// sender is the slice of the Telegram API the bot uses; *tgbotapi.BotAPI
// satisfies it.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot drives the Telegram login handshake and routes authenticated free text
// into the query pipeline. Handshake state is an explicit enumerated machine
// persisted per remote user in the session store.
type Bot struct {
	api      sender
	sessions sessionStore
	auth     authenticator
	chat     questionAnswerer
	logger   *zap.Logger
}

// New constructs a Bot.
func New(api sender, sessions sessionStore, auth authenticator, chat questionAnswerer, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{api: api, sessions: sessions, auth: auth, chat: chat, logger: logger}
}

// Run consumes updates until the channel closes or the context is canceled.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single Telegram update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, userID, chatID, msg.Command())
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	session, err := b.sessions.Get(ctx, userID)
	if err != nil {
		b.logger.Warn("failed to load bot session", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(chatID, msgInternalTrouble)
		return
	}
	if session == nil {
		b.reply(chatID, msgNotLoggedIn)
		return
	}

	switch session.State {
	case models.BotStateAwaitingUsername:
		b.collectUsername(ctx, userID, chatID, session, text)
	case models.BotStateAwaitingPassword:
		b.attemptLogin(ctx, userID, chatID, session, text)
	case models.BotStateAuthenticated:
		b.answerQuestion(ctx, userID, chatID, session, text)
	default:
		b.reply(chatID, msgNotLoggedIn)
	}
}

func (b *Bot) handleCommand(ctx context.Context, userID, chatID int64, command string) {
	switch command {
	case "start":
		session := &models.BotSession{State: models.BotStateAwaitingUsername}
		if err := b.sessions.Put(ctx, userID, session); err != nil {
			b.logger.Warn("failed to start handshake", zap.Int64("user_id", userID), zap.Error(err))
			b.reply(chatID, msgInternalTrouble)
			return
		}
		b.reply(chatID, msgWelcome)
	case "cancel":
		if err := b.sessions.Delete(ctx, userID); err != nil {
			b.logger.Warn("failed to delete bot session", zap.Int64("user_id", userID), zap.Error(err))
		}
		b.reply(chatID, msgCanceled)
	default:
		b.reply(chatID, msgUnknownCommand)
	}
}

func (b *Bot) collectUsername(ctx context.Context, userID, chatID int64, session *models.BotSession, text string) {
	session.State = models.BotStateAwaitingPassword
	session.PendingUsername = text
	if err := b.sessions.Put(ctx, userID, session); err != nil {
		b.logger.Warn("failed to store pending username", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(chatID, msgInternalTrouble)
		return
	}
	b.reply(chatID, msgAskPassword)
}

func (b *Bot) attemptLogin(ctx context.Context, userID, chatID int64, session *models.BotSession, password string) {
	user, err := b.auth.Authenticate(ctx, session.PendingUsername, password)
	if err != nil {
		// Back to username collection; the failed attempt leaves nothing behind.
		if putErr := b.sessions.Put(ctx, userID, &models.BotSession{State: models.BotStateAwaitingUsername}); putErr != nil {
			b.logger.Warn("failed to reset handshake", zap.Int64("user_id", userID), zap.Error(putErr))
		}
		b.reply(chatID, msgBadCredentials)
		return
	}

	principal := user.Principal()
	authed := &models.BotSession{State: models.BotStateAuthenticated, Principal: &principal}
	if err := b.sessions.Put(ctx, userID, authed); err != nil {
		b.logger.Warn("failed to store authenticated session", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(chatID, msgInternalTrouble)
		return
	}
	b.reply(chatID, msgAuthenticated)
}

func (b *Bot) answerQuestion(ctx context.Context, userID, chatID int64, session *models.BotSession, question string) {
	if session.Principal == nil {
		b.reply(chatID, msgNotLoggedIn)
		return
	}

	answer, err := b.chat.Ask(ctx, *session.Principal, question)
	if err != nil {
		b.logger.Warn("question pipeline failed", zap.Int64("user_id", userID), zap.Error(err))
		b.reply(chatID, msgInternalTrouble)
		return
	}

	// Rewrite the session to refresh its TTL.
	if err := b.sessions.Put(ctx, userID, session); err != nil {
		b.logger.Warn("failed to refresh session", zap.Int64("user_id", userID), zap.Error(err))
	}

	b.reply(chatID, answer)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn("failed to send telegram message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
