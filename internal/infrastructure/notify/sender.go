package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender satisfies observer.Sender by writing the notification to the
// structured log. It stands in for a real transport (email, SMS, in-app)
// which is deliberately outside this service.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, target, subject, message string) error {
	s.log.Info("notification",
		zap.String("target", target),
		zap.String("subject", subject),
		zap.String("message", message),
	)
	return nil
}
