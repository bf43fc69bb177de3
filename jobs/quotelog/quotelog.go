// Package quotelog periodically logs the top of book. It is an
// observability job only; nothing is published outside the process.
package quotelog

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"limitbook/service"
)

type Logger struct {
	svc      *service.BookService
	interval time.Duration
}

func New(svc *service.BookService, interval time.Duration) *Logger {
	if interval <= 0 {
		interval = time.Second
	}
	return &Logger{svc: svc, interval: interval}
}

// Run blocks until ctx is cancelled, logging the current quote once
// per interval. One-sided or empty books log at debug level only.
func (l *Logger) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			q, ok := l.svc.Quote()
			if !ok {
				log.WithField("resting", l.svc.Len()).Debug("no two-sided quote")
				continue
			}
			log.WithFields(log.Fields{
				"bid":    q.Bid.StringFixed(2),
				"ask":    q.Ask.StringFixed(2),
				"spread": q.Spread.StringFixed(2),
			}).Info("top of book")
		}
	}
}
