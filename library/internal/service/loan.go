package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/library/internal/repository"
)

// CreateLoan checks out a book for a member. The book must be available and
// the member eligible; on success the book flips unavailable and any Ready
// reservation the member held for it is fulfilled.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.Loan{}, err
	}
	member, err := s.repo.GetMember(ctx, req.MemberUid)
	if err != nil {
		return model.Loan{}, err
	}
	if !book.IsAvailable {
		return model.Loan{}, errs.ErrBookUnavailable
	}
	ok, reason, err := s.canBorrow(ctx, member)
	if err != nil {
		return model.Loan{}, err
	}
	if !ok {
		return model.Loan{}, errors.Wrap(errs.ErrIneligible, reason)
	}

	loanDate := s.today()
	returnDate := loanDate.AddDate(0, 0, s.cfg.DefaultLoanPeriod)
	if req.ReturnDate != nil {
		returnDate = truncateToDay(req.ReturnDate.Time)
	}
	if !returnDate.After(loanDate) {
		return model.Loan{}, errors.Wrap(errs.ErrValidation, "return date must be after loan date")
	}

	loan := model.Loan{
		LoanUid:    uuid.NewString(),
		BookID:     book.ID,
		BookUid:    book.BookUid,
		MemberID:   member.ID,
		MemberUid:  member.MemberUid,
		LoanDate:   loanDate,
		ReturnDate: returnDate,
		FineAmount: decimal.Zero,
	}
	err = s.repo.InTx(ctx, func(r repository.Repository) error {
		created, err := r.CreateLoan(ctx, loan)
		if err != nil {
			return err
		}
		loan = created
		if err := r.SetBookAvailable(ctx, book.ID, false); err != nil {
			return err
		}
		// a member collecting a book held for them fulfills the reservation
		res, err := r.ReadyReservation(ctx, book.ID, member.ID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil
			}
			return err
		}
		return r.UpdateReservationStatus(ctx, res.ID, model.ReservationFulfilled, nil)
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("loan created",
		zap.String("loan_uid", loan.LoanUid),
		zap.String("book_uid", loan.BookUid),
		zap.String("member_uid", loan.MemberUid))
	return loan, nil
}

// ReturnBook marks the loan returned, computes the fine for late returns,
// flips the book available and promotes the next pending reservation.
func (s *Service) ReturnBook(ctx context.Context, loanUid string, req model.ReturnBookRequest) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned {
		return model.Loan{}, errs.ErrAlreadyReturned
	}

	actual := s.today()
	if req.ActualReturnDate != nil {
		actual = truncateToDay(req.ActualReturnDate.Time)
	}
	if actual.Before(truncateToDay(loan.LoanDate)) {
		return model.Loan{}, errors.Wrap(errs.ErrValidation, "actual return date cannot be before loan date")
	}

	fine := decimal.Zero
	if overdueDays := daysBetween(loan.ReturnDate, actual); overdueDays > 0 {
		fine = decimal.NewFromInt(int64(overdueDays)).Mul(s.cfg.FinePerDay)
	}

	err = s.repo.InTx(ctx, func(r repository.Repository) error {
		if err := r.SaveLoanReturn(ctx, loan.ID, actual, fine); err != nil {
			return err
		}
		return r.SetBookAvailable(ctx, loan.BookID, true)
	})
	if err != nil {
		return model.Loan{}, err
	}

	loan.Returned = true
	loan.ActualReturnDate = &actual
	loan.FineAmount = fine

	if err := s.promoteNext(ctx, loan.BookID); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// ExtendLoan moves the due date, unless the member has another overdue loan.
func (s *Service) ExtendLoan(ctx context.Context, loanUid string, req model.ExtendLoanRequest) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned {
		return model.Loan{}, errs.ErrAlreadyReturned
	}

	newDate := truncateToDay(req.NewReturnDate.Time)
	if !newDate.After(truncateToDay(loan.LoanDate)) {
		return model.Loan{}, errors.Wrap(errs.ErrValidation, "return date must be after loan date")
	}

	overdue, err := s.repo.ListMemberOverdueLoans(ctx, loan.MemberID, s.today())
	if err != nil {
		return model.Loan{}, err
	}
	for _, l := range overdue {
		if l.ID != loan.ID {
			return model.Loan{}, errs.ErrHasOtherOverdue
		}
	}

	if err := s.repo.UpdateLoanReturnDate(ctx, loan.ID, newDate); err != nil {
		return model.Loan{}, err
	}
	loan.ReturnDate = newDate
	return loan, nil
}

func (s *Service) GetActiveLoans(ctx context.Context) ([]model.ActiveLoanRow, error) {
	return s.repo.ListActiveLoans(ctx, s.today())
}

func (s *Service) GetOverdueLoans(ctx context.Context) ([]model.OverdueLoanRow, error) {
	return s.repo.ListOverdueLoans(ctx, s.today())
}
