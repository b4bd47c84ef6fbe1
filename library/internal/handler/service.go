package handler

import (
	"context"

	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/library/internal/service"
	"github.com/bookhaven/library-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.BookDetail, error)
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error

	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	GetMember(ctx context.Context, memberUid string) (model.MemberDetail, error)
	ListMembers(ctx context.Context, status model.MemberStatus, page, size int) (model.ListMembers, error)
	UpdateMember(ctx context.Context, memberUid string, req model.UpdateMemberRequest) (model.Member, error)
	DeleteMember(ctx context.Context, memberUid string) error
	CanBorrow(ctx context.Context, memberUid string) (bool, string, error)

	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	ReturnBook(ctx context.Context, loanUid string, req model.ReturnBookRequest) (model.Loan, error)
	ExtendLoan(ctx context.Context, loanUid string, req model.ExtendLoanRequest) (model.Loan, error)
	GetActiveLoans(ctx context.Context) ([]model.ActiveLoanRow, error)
	GetOverdueLoans(ctx context.Context) ([]model.OverdueLoanRow, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservationUid string) error
	GetBookReservations(ctx context.Context, bookUid string) ([]model.BookReservationRow, error)
	GetMemberReservations(ctx context.Context, memberUid string) ([]model.MemberReservationRow, error)

	OverdueSweep(ctx context.Context) (int, error)
	ReminderSweep(ctx context.Context) (int, error)

	ActiveLoansReport(ctx context.Context) (model.ActiveLoansReport, error)
	OverdueReport(ctx context.Context) (model.OverdueReport, error)
	PopularBooks(ctx context.Context, limit int) ([]model.PopularBookRow, error)
	MemberActivity(ctx context.Context, limit int) ([]model.MemberActivityRow, error)
	LibraryStatistics(ctx context.Context) (model.LibraryStatistics, error)

	RecordNotification(ctx context.Context, event kafka.EventNotification) error
}

var _ LibraryService = (*service.Service)(nil)
