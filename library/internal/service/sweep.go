package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OverdueSweep emits one overdue notice per un-returned loan past its due
// date, then runs the reservation expiry sweep. Returns the number of overdue
// notices sent. Re-running the sweep re-sends notices; deliveries are not
// deduplicated.
func (s *Service) OverdueSweep(ctx context.Context) (int, error) {
	overdue, err := s.repo.ListOverdueLoans(ctx, s.today())
	if err != nil {
		return 0, err
	}
	for _, loan := range overdue {
		fine := decimal.NewFromInt(int64(loan.DaysOverdue)).Mul(s.cfg.FinePerDay)
		s.notify(ctx, loan.MemberEmail,
			fmt.Sprintf("Overdue Book: %s", loan.BookTitle),
			fmt.Sprintf("Dear %s,\n\nThis is a reminder that the following book is overdue:\n\n"+
				"Book: %s by %s\nLoan Date: %s\nDue Date: %s\nDays Overdue: %d\nFine Amount: $%s\n\n"+
				"Please return the book as soon as possible to avoid additional fines.",
				loan.MemberName, loan.BookTitle, loan.BookAuthor,
				loan.LoanDate.Format(time.DateOnly), loan.ReturnDate.Format(time.DateOnly),
				loan.DaysOverdue, fine.StringFixed(2)))
	}

	if _, err := s.ExpireSweep(ctx); err != nil {
		return len(overdue), err
	}
	s.log.Info("overdue sweep finished", zap.Int("notices", len(overdue)))
	return len(overdue), nil
}

// ReminderSweep notifies members whose ready reservations expire tomorrow.
func (s *Service) ReminderSweep(ctx context.Context) (int, error) {
	tomorrow := s.today().AddDate(0, 0, 1)
	expiring, err := s.repo.ListReadyExpiring(ctx, tomorrow)
	if err != nil {
		return 0, err
	}
	for _, res := range expiring {
		s.notify(ctx, res.MemberEmail,
			fmt.Sprintf("Reservation Expiring Tomorrow: %s", res.BookTitle),
			fmt.Sprintf("Dear %s,\n\nThis is a reminder that your reservation for %q by %s "+
				"will expire tomorrow (%s).\n\n"+
				"Please collect your book today to avoid losing your reservation.",
				res.MemberName, res.BookTitle, res.BookAuthor, res.ExpiryDate.Format(time.DateOnly)))
	}
	s.log.Info("reminder sweep finished", zap.Int("reminders", len(expiring)))
	return len(expiring), nil
}
