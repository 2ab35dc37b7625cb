package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type TelegramConfig struct {
	Token   string        `yaml:"token"`
	UTCDiff time.Duration `yaml:"utcDiff"`
}

type sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// NewTelegram creates a send-only bot. Owner ids are expected to be
// telegram chat ids.
func NewTelegram(cfg TelegramConfig, log logger.Logger) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.Token,
		Offline: cfg.Token == "",
	})
	if err != nil {
		return nil, errors.WrapFail(err, "init telegram bot")
	}
	return newTelegram(bot, cfg.UTCDiff, log), nil
}

func newTelegram(s sender, utcDiff time.Duration, log logger.Logger) *Telegram {
	return &Telegram{
		bot:     s,
		utcDiff: utcDiff,
		log:     log.With("telegram"),
	}
}

type Telegram struct {
	bot     sender
	utcDiff time.Duration
	log     logger.Logger
}

func (t *Telegram) Notify(ctx context.Context, events ...Event) error {
	var errs []error
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		chatID, err := strconv.ParseInt(e.OwnerID, 10, 64)
		if err != nil {
			t.log.Warnf("owner %q has no telegram chat, %s event skipped", e.OwnerID, e.Kind)
			continue
		}

		_, err = t.bot.Send(
			telebot.ChatID(chatID),
			t.message(e),
			&telebot.SendOptions{ParseMode: telebot.ModeMarkdown},
		)
		if err != nil {
			errs = append(errs, errors.WrapFailf(err, "send %s to %d", e.Kind, chatID))
		}
	}
	return errors.Join(errs...)
}

func (t *Telegram) message(e Event) string {
	start := e.StartTime.Add(t.utcDiff).Format("02.01.2006 15:04")

	switch e.Kind {
	case KindScheduled:
		msg := fmt.Sprintf("Собеседование `%s` назначено на %s", e.InterviewID, start)
		if e.RoomURL != "" {
			msg += "\nСсылка: " + e.RoomURL
		}
		return msg
	case KindRejected:
		return fmt.Sprintf("Собеседование `%s` на %s отменено второй стороной", e.InterviewID, start)
	case KindExpired:
		return fmt.Sprintf("Срок действия заявки `%s` истёк", e.RequestID)
	case KindInterviewExpired:
		return fmt.Sprintf("Собеседование `%s` на %s не состоялось и было снято", e.InterviewID, start)
	default:
		return fmt.Sprintf("Событие %s по собеседованию `%s`", e.Kind, e.InterviewID)
	}
}
