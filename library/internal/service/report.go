package service

import (
	"context"

	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/pkg/kafka"
)

func (s *Service) ActiveLoansReport(ctx context.Context) (model.ActiveLoansReport, error) {
	return s.repo.ActiveLoansReport(ctx, s.today())
}

func (s *Service) OverdueReport(ctx context.Context) (model.OverdueReport, error) {
	return s.repo.OverdueReport(ctx, s.today(), s.cfg.FinePerDay)
}

func (s *Service) PopularBooks(ctx context.Context, limit int) ([]model.PopularBookRow, error) {
	return s.repo.PopularBooks(ctx, limit)
}

func (s *Service) MemberActivity(ctx context.Context, limit int) ([]model.MemberActivityRow, error) {
	return s.repo.MemberActivity(ctx, limit)
}

func (s *Service) LibraryStatistics(ctx context.Context) (model.LibraryStatistics, error) {
	return s.repo.LibraryStatistics(ctx, s.today())
}

// RecordNotification is used by the kafka consumer to append delivered
// notifications to the audit table.
func (s *Service) RecordNotification(ctx context.Context, event kafka.EventNotification) error {
	return s.repo.RecordNotification(ctx, event)
}
