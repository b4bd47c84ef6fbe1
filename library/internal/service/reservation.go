package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

// CreateReservation queues a member for a currently-unavailable book and sends
// a confirmation carrying the queue position.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.Reservation{}, err
	}
	member, err := s.repo.GetMember(ctx, req.MemberUid)
	if err != nil {
		return model.Reservation{}, err
	}
	if book.IsAvailable {
		return model.Reservation{}, errs.ErrBookAvailable
	}
	exists, err := s.repo.HasActiveReservation(ctx, book.ID, member.ID)
	if err != nil {
		return model.Reservation{}, err
	}
	if exists {
		return model.Reservation{}, errs.ErrDuplicateReservation
	}

	res := model.Reservation{
		ReservationUid: uuid.NewString(),
		BookID:         book.ID,
		BookUid:        book.BookUid,
		MemberID:       member.ID,
		MemberUid:      member.MemberUid,
		ReserveDate:    s.clock.Now(),
		Status:         model.ReservationPending,
	}
	created, err := s.repo.CreateReservation(ctx, res)
	if err != nil {
		return model.Reservation{}, err
	}

	earlier, err := s.repo.CountEarlierPending(ctx, book.ID, created.ReserveDate)
	if err != nil {
		return model.Reservation{}, err
	}
	s.notify(ctx, member.Email,
		fmt.Sprintf("Reservation Confirmed: %s", book.Title),
		fmt.Sprintf("Dear %s,\n\nYour reservation for %q by %s has been confirmed.\n\n"+
			"Queue Position: %d\nReservation Date: %s\n\n"+
			"You will be notified when the book becomes available.",
			member.Name, book.Title, book.Author, earlier+1, created.ReserveDate.Format(time.DateOnly)))

	return created, nil
}

// promoteNext moves the oldest pending reservation for the book to Ready,
// stamps its expiry and notifies the member. No-op when the queue is empty.
func (s *Service) promoteNext(ctx context.Context, bookID int) error {
	entry, err := s.repo.NextPending(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}

	expiry := s.today().AddDate(0, 0, s.cfg.ReservationHoldDays)
	if err := s.repo.UpdateReservationStatus(ctx, entry.ID, model.ReservationReady, &expiry); err != nil {
		return err
	}
	s.log.Info("reservation promoted",
		zap.String("reservation_uid", entry.ReservationUid),
		zap.Time("expiry", expiry))

	s.notify(ctx, entry.MemberEmail,
		fmt.Sprintf("Book Ready for Pickup: %s", entry.BookTitle),
		fmt.Sprintf("Dear %s,\n\nGreat news! Your reserved book %q by %s is now ready for pickup.\n\n"+
			"Please collect your book by %s or your reservation will expire.",
			entry.MemberName, entry.BookTitle, entry.BookAuthor, expiry.Format(time.DateOnly)))
	return nil
}

// CancelReservation cancels a pending or ready reservation. Cancelling a
// ready one hands the slot to the next member in the queue.
func (s *Service) CancelReservation(ctx context.Context, reservationUid string) error {
	res, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return err
	}
	if res.Status.Terminal() {
		return errors.Wrapf(errs.ErrTerminalState, "cannot cancel %s reservation", res.Status)
	}
	wasReady := res.Status == model.ReservationReady
	if err := s.repo.UpdateReservationStatus(ctx, res.ID, model.ReservationCancelled, nil); err != nil {
		return err
	}
	if wasReady {
		return s.promoteNext(ctx, res.BookID)
	}
	return nil
}

// ExpireSweep expires every Ready reservation past its expiry date and
// cascades promotion to the next member in each queue. Returns the number of
// reservations expired.
func (s *Service) ExpireSweep(ctx context.Context) (int, error) {
	expired, err := s.repo.ListExpiredReady(ctx, s.today())
	if err != nil {
		return 0, err
	}
	for _, res := range expired {
		if err := s.repo.UpdateReservationStatus(ctx, res.ID, model.ReservationExpired, nil); err != nil {
			return 0, err
		}
		if err := s.promoteNext(ctx, res.BookID); err != nil {
			return 0, err
		}
	}
	if len(expired) > 0 {
		s.log.Info("expired reservations processed", zap.Int("count", len(expired)))
	}
	return len(expired), nil
}

func (s *Service) GetBookReservations(ctx context.Context, bookUid string) ([]model.BookReservationRow, error) {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBookReservations(ctx, book.ID)
}

func (s *Service) GetMemberReservations(ctx context.Context, memberUid string) ([]model.MemberReservationRow, error) {
	member, err := s.repo.GetMember(ctx, memberUid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMemberReservations(ctx, member.ID)
}
