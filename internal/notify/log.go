package notify

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/pkg/logger"
)

func NewLog(log logger.Logger) Notifier {
	return logNotifier{log: log.With("events")}
}

type logNotifier struct {
	log logger.Logger
}

func (l logNotifier) Notify(_ context.Context, events ...Event) error {
	for _, e := range events {
		l.log.Infof(
			"%s for %s: interview=%q request=%q start=%s",
			e.Kind, e.OwnerID, e.InterviewID, e.RequestID, e.StartTime.Format(time.RFC3339),
		)
	}
	return nil
}
