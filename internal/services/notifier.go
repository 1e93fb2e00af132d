package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notifier доставляет одноразовый код оператору.
type Notifier interface {
	SendCode(ctx context.Context, email, code string, ttl time.Duration) error
}

// LogNotifier пишет код в лог. Используется, пока не подключена почта.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendCode(_ context.Context, email, code string, ttl time.Duration) error {
	n.logger.Warn("Одноразовый код входа",
		zap.String("email", email),
		zap.String("verification_code", code),
		zap.Duration("ttl", ttl),
	)
	return nil
}
