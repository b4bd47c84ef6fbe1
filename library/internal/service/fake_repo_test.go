package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/library/internal/repository"
	"github.com/bookhaven/library-service/pkg/kafka"
)

// fakeRepo is an in-memory Repository. It mirrors the database constraints
// the store relies on: one active loan per book and one open reservation per
// (book, member) pair.
type fakeRepo struct {
	nextID        int
	books         map[int]*model.Book
	members       map[int]*model.Member
	loans         map[int]*model.Loan
	reservations  map[int]*model.Reservation
	notifications []kafka.EventNotification
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:        make(map[int]*model.Book),
		members:      make(map[int]*model.Member),
		loans:        make(map[int]*model.Loan),
		reservations: make(map[int]*model.Reservation),
	}
}

var _ repository.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) InTx(_ context.Context, fn func(r repository.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	book.ID = f.id()
	f.books[book.ID] = &book
	return book, nil
}

func (f *fakeRepo) GetBook(_ context.Context, bookUid string) (model.Book, error) {
	for _, b := range f.books {
		if b.BookUid == bookUid {
			return *b, nil
		}
	}
	return model.Book{}, errs.ErrNotFound
}

func (f *fakeRepo) ListBooks(_ context.Context, _ model.BookFilter, page, size int) (model.ListBooks, error) {
	out := model.ListBooks{Paging: model.Paging{Page: page, PageSize: size}}
	for _, b := range f.books {
		out.Items = append(out.Items, *b)
	}
	out.TotalElements = len(out.Items)
	return out, nil
}

func (f *fakeRepo) SearchBooks(_ context.Context, query string, _ int) ([]model.Book, error) {
	var out []model.Book
	for _, b := range f.books {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(query)) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	book, err := f.GetBook(ctx, bookUid)
	if err != nil {
		return model.Book{}, err
	}
	b := f.books[book.ID]
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	return *b, nil
}

func (f *fakeRepo) DeleteBook(ctx context.Context, bookUid string) error {
	book, err := f.GetBook(ctx, bookUid)
	if err != nil {
		return err
	}
	delete(f.books, book.ID)
	return nil
}

func (f *fakeRepo) SetBookAvailable(_ context.Context, bookID int, available bool) error {
	b, ok := f.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	b.IsAvailable = available
	return nil
}

func (f *fakeRepo) ActiveLoanByBook(_ context.Context, bookID int) (model.LoanSummary, error) {
	for _, l := range f.loans {
		if l.BookID == bookID && !l.Returned {
			member := f.members[l.MemberID]
			return model.LoanSummary{
				LoanUid:    l.LoanUid,
				MemberUid:  l.MemberUid,
				MemberName: member.Name,
				ReturnDate: l.ReturnDate,
			}, nil
		}
	}
	return model.LoanSummary{}, errs.ErrNotFound
}

func (f *fakeRepo) CreateMember(_ context.Context, member model.Member) (model.Member, error) {
	member.ID = f.id()
	f.members[member.ID] = &member
	return member, nil
}

func (f *fakeRepo) GetMember(_ context.Context, memberUid string) (model.Member, error) {
	for _, m := range f.members {
		if m.MemberUid == memberUid {
			return *m, nil
		}
	}
	return model.Member{}, errs.ErrNotFound
}

func (f *fakeRepo) ListMembers(_ context.Context, status model.MemberStatus, page, size int) (model.ListMembers, error) {
	out := model.ListMembers{Paging: model.Paging{Page: page, PageSize: size}}
	for _, m := range f.members {
		if status == "" || m.Status == status {
			out.Items = append(out.Items, *m)
		}
	}
	out.TotalElements = len(out.Items)
	return out, nil
}

func (f *fakeRepo) UpdateMember(ctx context.Context, memberUid string, req model.UpdateMemberRequest) (model.Member, error) {
	member, err := f.GetMember(ctx, memberUid)
	if err != nil {
		return model.Member{}, err
	}
	m := f.members[member.ID]
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Address != nil {
		m.Address = *req.Address
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	return *m, nil
}

func (f *fakeRepo) DeleteMember(ctx context.Context, memberUid string) error {
	member, err := f.GetMember(ctx, memberUid)
	if err != nil {
		return err
	}
	delete(f.members, member.ID)
	return nil
}

func (f *fakeRepo) CountMemberActiveLoans(_ context.Context, memberID int) (int, error) {
	n := 0
	for _, l := range f.loans {
		if l.MemberID == memberID && !l.Returned {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListMemberActiveLoans(_ context.Context, memberID int) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range f.loans {
		if l.MemberID == memberID && !l.Returned {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListMemberOverdueLoans(_ context.Context, memberID int, today time.Time) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range f.loans {
		if l.MemberID == memberID && !l.Returned && l.ReturnDate.Before(today) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListMemberLoanHistory(_ context.Context, memberID, limit int) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range f.loans {
		if l.MemberID == memberID && l.Returned {
			out = append(out, *l)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) CountMemberActiveReservations(_ context.Context, memberID int) (int, error) {
	n := 0
	for _, r := range f.reservations {
		if r.MemberID == memberID && !r.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateLoan(_ context.Context, loan model.Loan) (model.Loan, error) {
	for _, l := range f.loans {
		if l.BookID == loan.BookID && !l.Returned {
			return model.Loan{}, errs.ErrBookUnavailable
		}
	}
	loan.ID = f.id()
	f.loans[loan.ID] = &loan
	return loan, nil
}

func (f *fakeRepo) GetLoan(_ context.Context, loanUid string) (model.Loan, error) {
	for _, l := range f.loans {
		if l.LoanUid == loanUid {
			return *l, nil
		}
	}
	return model.Loan{}, errs.ErrNotFound
}

func (f *fakeRepo) SaveLoanReturn(_ context.Context, loanID int, actual time.Time, fine decimal.Decimal) error {
	l, ok := f.loans[loanID]
	if !ok {
		return errs.ErrNotFound
	}
	l.Returned = true
	l.ActualReturnDate = &actual
	l.FineAmount = fine
	return nil
}

func (f *fakeRepo) UpdateLoanReturnDate(_ context.Context, loanID int, newDate time.Time) error {
	l, ok := f.loans[loanID]
	if !ok {
		return errs.ErrNotFound
	}
	l.ReturnDate = newDate
	return nil
}

func (f *fakeRepo) ListActiveLoans(_ context.Context, today time.Time) ([]model.ActiveLoanRow, error) {
	var out []model.ActiveLoanRow
	for _, l := range f.loans {
		if l.Returned {
			continue
		}
		book := f.books[l.BookID]
		member := f.members[l.MemberID]
		row := model.ActiveLoanRow{
			LoanUid:    l.LoanUid,
			BookUid:    l.BookUid,
			BookTitle:  book.Title,
			BookAuthor: book.Author,
			MemberUid:  l.MemberUid,
			MemberName: member.Name,
			LoanDate:   l.LoanDate,
			ReturnDate: l.ReturnDate,
		}
		if l.ReturnDate.Before(today) {
			row.IsOverdue = true
			row.DaysOverdue = int(today.Sub(l.ReturnDate).Hours() / 24)
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeRepo) ListOverdueLoans(_ context.Context, today time.Time) ([]model.OverdueLoanRow, error) {
	var out []model.OverdueLoanRow
	for _, l := range f.loans {
		if l.Returned || !l.ReturnDate.Before(today) {
			continue
		}
		book := f.books[l.BookID]
		member := f.members[l.MemberID]
		out = append(out, model.OverdueLoanRow{
			LoanUid:     l.LoanUid,
			BookUid:     l.BookUid,
			BookTitle:   book.Title,
			BookAuthor:  book.Author,
			MemberUid:   l.MemberUid,
			MemberName:  member.Name,
			MemberEmail: member.Email,
			LoanDate:    l.LoanDate,
			ReturnDate:  l.ReturnDate,
			DaysOverdue: int(today.Sub(l.ReturnDate).Hours() / 24),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoanUid < out[j].LoanUid })
	return out, nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, res model.Reservation) (model.Reservation, error) {
	for _, r := range f.reservations {
		if r.BookID == res.BookID && r.MemberID == res.MemberID && !r.Status.Terminal() {
			return model.Reservation{}, errs.ErrDuplicateReservation
		}
	}
	res.ID = f.id()
	f.reservations[res.ID] = &res
	return res, nil
}

func (f *fakeRepo) GetReservation(_ context.Context, reservationUid string) (model.Reservation, error) {
	for _, r := range f.reservations {
		if r.ReservationUid == reservationUid {
			return *r, nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (f *fakeRepo) UpdateReservationStatus(_ context.Context, id int, status model.ReservationStatus, expiry *time.Time) error {
	r, ok := f.reservations[id]
	if !ok {
		return errs.ErrNotFound
	}
	r.Status = status
	r.ExpiryDate = expiry
	return nil
}

func (f *fakeRepo) NextPending(_ context.Context, bookID int) (model.QueueEntry, error) {
	var pending []*model.Reservation
	for _, r := range f.reservations {
		if r.BookID == bookID && r.Status == model.ReservationPending {
			pending = append(pending, r)
		}
	}
	if len(pending) == 0 {
		return model.QueueEntry{}, errs.ErrNotFound
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ReserveDate.Before(pending[j].ReserveDate) })
	first := pending[0]
	member := f.members[first.MemberID]
	book := f.books[first.BookID]
	return model.QueueEntry{
		Reservation: *first,
		MemberName:  member.Name,
		MemberEmail: member.Email,
		BookTitle:   book.Title,
		BookAuthor:  book.Author,
	}, nil
}

func (f *fakeRepo) CountEarlierPending(_ context.Context, bookID int, before time.Time) (int, error) {
	n := 0
	for _, r := range f.reservations {
		if r.BookID == bookID && r.Status == model.ReservationPending && r.ReserveDate.Before(before) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) HasActiveReservation(_ context.Context, bookID, memberID int) (bool, error) {
	for _, r := range f.reservations {
		if r.BookID == bookID && r.MemberID == memberID && !r.Status.Terminal() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ReadyReservation(_ context.Context, bookID, memberID int) (model.Reservation, error) {
	for _, r := range f.reservations {
		if r.BookID == bookID && r.MemberID == memberID && r.Status == model.ReservationReady {
			return *r, nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (f *fakeRepo) CountReservations(_ context.Context, bookID int, statuses ...model.ReservationStatus) (int, error) {
	n := 0
	for _, r := range f.reservations {
		if r.BookID != bookID {
			continue
		}
		for _, st := range statuses {
			if r.Status == st {
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeRepo) ListBookReservations(_ context.Context, bookID int) ([]model.BookReservationRow, error) {
	var out []model.BookReservationRow
	for _, r := range f.reservations {
		if r.BookID != bookID {
			continue
		}
		member := f.members[r.MemberID]
		out = append(out, model.BookReservationRow{
			ReservationUid: r.ReservationUid,
			MemberUid:      r.MemberUid,
			MemberName:     member.Name,
			MemberEmail:    member.Email,
			ReserveDate:    r.ReserveDate,
			Status:         r.Status,
			ExpiryDate:     r.ExpiryDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReserveDate.Before(out[j].ReserveDate) })
	return out, nil
}

func (f *fakeRepo) ListMemberReservations(_ context.Context, memberID int) ([]model.MemberReservationRow, error) {
	var out []model.MemberReservationRow
	for _, r := range f.reservations {
		if r.MemberID != memberID {
			continue
		}
		book := f.books[r.BookID]
		out = append(out, model.MemberReservationRow{
			ReservationUid: r.ReservationUid,
			BookUid:        r.BookUid,
			BookTitle:      book.Title,
			BookAuthor:     book.Author,
			ReserveDate:    r.ReserveDate,
			Status:         r.Status,
			ExpiryDate:     r.ExpiryDate,
		})
	}
	return out, nil
}

func (f *fakeRepo) ListExpiredReady(_ context.Context, today time.Time) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range f.reservations {
		if r.Status == model.ReservationReady && r.ExpiryDate != nil && r.ExpiryDate.Before(today) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) ListReadyExpiring(_ context.Context, date time.Time) ([]model.ReminderRow, error) {
	var out []model.ReminderRow
	for _, r := range f.reservations {
		if r.Status != model.ReservationReady || r.ExpiryDate == nil || !r.ExpiryDate.Equal(date) {
			continue
		}
		member := f.members[r.MemberID]
		book := f.books[r.BookID]
		out = append(out, model.ReminderRow{
			ReservationUid: r.ReservationUid,
			BookTitle:      book.Title,
			BookAuthor:     book.Author,
			MemberName:     member.Name,
			MemberEmail:    member.Email,
			ExpiryDate:     *r.ExpiryDate,
		})
	}
	return out, nil
}

func (f *fakeRepo) ActiveLoansReport(_ context.Context, _ time.Time) (model.ActiveLoansReport, error) {
	return model.ActiveLoansReport{}, nil
}

func (f *fakeRepo) OverdueReport(_ context.Context, _ time.Time, _ decimal.Decimal) (model.OverdueReport, error) {
	return model.OverdueReport{}, nil
}

func (f *fakeRepo) PopularBooks(_ context.Context, _ int) ([]model.PopularBookRow, error) {
	return nil, nil
}

func (f *fakeRepo) MemberActivity(_ context.Context, _ int) ([]model.MemberActivityRow, error) {
	return nil, nil
}

func (f *fakeRepo) LibraryStatistics(_ context.Context, _ time.Time) (model.LibraryStatistics, error) {
	return model.LibraryStatistics{}, nil
}

func (f *fakeRepo) RecordNotification(_ context.Context, event kafka.EventNotification) error {
	f.notifications = append(f.notifications, event)
	return nil
}
