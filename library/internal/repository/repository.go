package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/pkg/kafka"
)

type Repository interface {
	// InTx runs fn against a repository bound to a single transaction.
	InTx(ctx context.Context, fn func(r Repository) error) error

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
	SetBookAvailable(ctx context.Context, bookID int, available bool) error
	ActiveLoanByBook(ctx context.Context, bookID int) (model.LoanSummary, error)

	CreateMember(ctx context.Context, member model.Member) (model.Member, error)
	GetMember(ctx context.Context, memberUid string) (model.Member, error)
	ListMembers(ctx context.Context, status model.MemberStatus, page, size int) (model.ListMembers, error)
	UpdateMember(ctx context.Context, memberUid string, req model.UpdateMemberRequest) (model.Member, error)
	DeleteMember(ctx context.Context, memberUid string) error
	CountMemberActiveLoans(ctx context.Context, memberID int) (int, error)
	ListMemberActiveLoans(ctx context.Context, memberID int) ([]model.Loan, error)
	ListMemberOverdueLoans(ctx context.Context, memberID int, today time.Time) ([]model.Loan, error)
	ListMemberLoanHistory(ctx context.Context, memberID, limit int) ([]model.Loan, error)
	CountMemberActiveReservations(ctx context.Context, memberID int) (int, error)

	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	SaveLoanReturn(ctx context.Context, loanID int, actual time.Time, fine decimal.Decimal) error
	UpdateLoanReturnDate(ctx context.Context, loanID int, newDate time.Time) error
	ListActiveLoans(ctx context.Context, today time.Time) ([]model.ActiveLoanRow, error)
	ListOverdueLoans(ctx context.Context, today time.Time) ([]model.OverdueLoanRow, error)

	CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int, status model.ReservationStatus, expiry *time.Time) error
	NextPending(ctx context.Context, bookID int) (model.QueueEntry, error)
	CountEarlierPending(ctx context.Context, bookID int, before time.Time) (int, error)
	HasActiveReservation(ctx context.Context, bookID, memberID int) (bool, error)
	ReadyReservation(ctx context.Context, bookID, memberID int) (model.Reservation, error)
	CountReservations(ctx context.Context, bookID int, statuses ...model.ReservationStatus) (int, error)
	ListBookReservations(ctx context.Context, bookID int) ([]model.BookReservationRow, error)
	ListMemberReservations(ctx context.Context, memberID int) ([]model.MemberReservationRow, error)
	ListExpiredReady(ctx context.Context, today time.Time) ([]model.Reservation, error)
	ListReadyExpiring(ctx context.Context, date time.Time) ([]model.ReminderRow, error)

	ActiveLoansReport(ctx context.Context, today time.Time) (model.ActiveLoansReport, error)
	OverdueReport(ctx context.Context, today time.Time, finePerDay decimal.Decimal) (model.OverdueReport, error)
	PopularBooks(ctx context.Context, limit int) ([]model.PopularBookRow, error)
	MemberActivity(ctx context.Context, limit int) ([]model.MemberActivityRow, error)
	LibraryStatistics(ctx context.Context, today time.Time) (model.LibraryStatistics, error)

	RecordNotification(ctx context.Context, event kafka.EventNotification) error
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	membersTableName      = `members`
	loansTableName        = `loans`
	reservationsTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(r Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	txRepo := &repository{db: r.db, ext: tx, log: r.log}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
