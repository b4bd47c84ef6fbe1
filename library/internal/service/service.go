package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/config"
	"github.com/bookhaven/library-service/library/internal/repository"
)

// Notifier delivers a message to a member. Implementations decide the channel.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Clock supplies the current moment so date arithmetic stays testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() Clock { return systemClock{} }

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
	clock    Clock
	cfg      config.Library
}

func NewService(repo repository.Repository, notifier Notifier, clock Clock, cfg config.Library, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		cfg:      cfg,
	}
}

// today is the current date truncated to midnight UTC.
func (s *Service) today() time.Time {
	return truncateToDay(s.clock.Now())
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween is the number of whole days from a to b (negative when b < a).
func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}

// notify sends best-effort: a failed notification is logged, never propagated
// to the caller of a lifecycle operation.
func (s *Service) notify(ctx context.Context, recipient, subject, body string) {
	if err := s.notifier.Send(ctx, recipient, subject, body); err != nil {
		s.log.Error("notify", zap.String("subject", subject), zap.Error(err))
	}
}
