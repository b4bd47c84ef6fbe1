package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

func validISBN(isbn string) bool {
	return isbn == "" || len(isbn) == 10 || len(isbn) == 13
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if !validISBN(req.ISBN) {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "ISBN must be either 10 or 13 characters long")
	}
	book := model.Book{
		BookUid:     uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		ISBN:        req.ISBN,
		Description: req.Description,
		Category:    req.Category,
		IsAvailable: true,
	}
	if req.PublishDate != nil {
		d := req.PublishDate.Time
		book.PublishDate = &d
	}
	return s.repo.CreateBook(ctx, book)
}

// GetBook returns the book with its current loan (if any) and pending
// reservation count.
func (s *Service) GetBook(ctx context.Context, bookUid string) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return model.BookDetail{}, err
	}
	detail := model.BookDetail{Book: book}

	if !book.IsAvailable {
		loan, err := s.repo.ActiveLoanByBook(ctx, book.ID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return model.BookDetail{}, err
		}
		if err == nil {
			detail.CurrentLoan = &loan
		}
	}

	count, err := s.repo.CountReservations(ctx, book.ID, model.ReservationPending)
	if err != nil {
		return model.BookDetail{}, err
	}
	detail.ReservationCount = count
	return detail, nil
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter, page, size)
}

func (s *Service) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, query, limit)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	if req.ISBN != nil && !validISBN(*req.ISBN) {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "ISBN must be either 10 or 13 characters long")
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Author != nil {
		trimmed := strings.TrimSpace(*req.Author)
		req.Author = &trimmed
	}
	return s.repo.UpdateBook(ctx, bookUid, req)
}

// DeleteBook refuses to remove a book while an active loan or a pending
// reservation still references it.
func (s *Service) DeleteBook(ctx context.Context, bookUid string) error {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return err
	}
	if _, err := s.repo.ActiveLoanByBook(ctx, book.ID); err == nil {
		return errors.Wrap(errs.ErrHasActiveLoans, "cannot delete book with active loans")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	count, err := s.repo.CountReservations(ctx, book.ID, model.ReservationPending, model.ReservationReady)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Wrap(errs.ErrHasReservations, "cannot delete book with pending reservations")
	}
	return s.repo.DeleteBook(ctx, bookUid)
}
