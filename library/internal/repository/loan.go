package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "book_id", "member_id", "loan_date", "return_date", "returned", "fine_amount").
		Values(loan.LoanUid, loan.BookID, loan.MemberID, loan.LoanDate, loan.ReturnDate, false, decimal.Zero).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	if err := sqlx.GetContext(ctx, r.ext, &loan.ID, query, args...); err != nil {
		// the partial unique index on loans(book_id) where not returned serializes
		// concurrent loan creation for the same book
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Loan{}, errs.ErrBookUnavailable
		}
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	q := `
	select ` + loanCols + `
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where l.loan_uid = $1
	limit 1`
	var loan model.Loan
	if err := sqlx.GetContext(ctx, r.ext, &loan, q, loanUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) SaveLoanReturn(ctx context.Context, loanID int, actual time.Time, fine decimal.Decimal) error {
	query, args, err := qb.Update(loansTableName).
		Set("returned", true).
		Set("actual_return_date", actual).
		Set("fine_amount", fine).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

func (r *repository) UpdateLoanReturnDate(ctx context.Context, loanID int, newDate time.Time) error {
	query, args, err := qb.Update(loansTableName).
		Set("return_date", newDate).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

func (r *repository) ListActiveLoans(ctx context.Context, today time.Time) ([]model.ActiveLoanRow, error) {
	q := `
	select l.loan_uid, b.book_uid, b.title as book_title, b.author as book_author,
	       m.member_uid, m.name as member_name, l.loan_date, l.return_date,
	       (l.return_date < $1) as is_overdue,
	       greatest(0, $1::date - l.return_date)::int as days_overdue
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where not l.returned
	order by l.return_date asc`
	var rows []model.ActiveLoanRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, today); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListOverdueLoans(ctx context.Context, today time.Time) ([]model.OverdueLoanRow, error) {
	q := `
	select l.loan_uid, b.book_uid, b.title as book_title, b.author as book_author,
	       m.member_uid, m.name as member_name, m.email as member_email,
	       l.loan_date, l.return_date,
	       ($1::date - l.return_date)::int as days_overdue
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where not l.returned and l.return_date < $1
	order by l.return_date asc`
	var rows []model.OverdueLoanRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, today); err != nil {
		return nil, err
	}
	return rows, nil
}
