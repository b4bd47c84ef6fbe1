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
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

const reservationCols = `
	r.id, r.reservation_uid, r.book_id, b.book_uid, r.member_id, m.member_uid,
	r.reserve_date, r.status, r.expiry_date`

func (r *repository) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	query, args, err := qb.Insert(reservationsTableName).
		Columns("reservation_uid", "book_id", "member_id", "reserve_date", "status").
		Values(res.ReservationUid, res.BookID, res.MemberID, res.ReserveDate, res.Status).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	if err := sqlx.GetContext(ctx, r.ext, &res.ID, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Reservation{}, errs.ErrDuplicateReservation
		}
		r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	q := `
	select ` + reservationCols + `
	from reservations r
	join books b on b.id = r.book_id
	join members m on m.id = r.member_id
	where r.reservation_uid = $1
	limit 1`
	var res model.Reservation
	if err := sqlx.GetContext(ctx, r.ext, &res, q, reservationUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) UpdateReservationStatus(ctx context.Context, id int, status model.ReservationStatus, expiry *time.Time) error {
	upd := qb.Update(reservationsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id})
	if expiry != nil {
		upd = upd.Set("expiry_date", *expiry)
	}
	query, args, err := upd.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

func (r *repository) NextPending(ctx context.Context, bookID int) (model.QueueEntry, error) {
	q := `
	select ` + reservationCols + `,
	       m.name as member_name, m.email as member_email,
	       b.title as book_title, b.author as book_author
	from reservations r
	join books b on b.id = r.book_id
	join members m on m.id = r.member_id
	where r.book_id = $1 and r.status = 'Pending'
	order by r.reserve_date asc
	limit 1`
	var entry model.QueueEntry
	if err := sqlx.GetContext(ctx, r.ext, &entry, q, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.QueueEntry{}, errs.ErrNotFound
		}
		return model.QueueEntry{}, err
	}
	return entry, nil
}

func (r *repository) CountEarlierPending(ctx context.Context, bookID int, before time.Time) (int, error) {
	q := `
	select count(*) from reservations
	where book_id = $1 and status = 'Pending' and reserve_date < $2`
	var count int
	if err := sqlx.GetContext(ctx, r.ext, &count, q, bookID, before); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) HasActiveReservation(ctx context.Context, bookID, memberID int) (bool, error) {
	q := `
	select exists(
		select 1 from reservations
		where book_id = $1 and member_id = $2 and status in ('Pending', 'Ready')
	)`
	var exists bool
	if err := sqlx.GetContext(ctx, r.ext, &exists, q, bookID, memberID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) ReadyReservation(ctx context.Context, bookID, memberID int) (model.Reservation, error) {
	q := `
	select ` + reservationCols + `
	from reservations r
	join books b on b.id = r.book_id
	join members m on m.id = r.member_id
	where r.book_id = $1 and r.member_id = $2 and r.status = 'Ready'
	limit 1`
	var res model.Reservation
	if err := sqlx.GetContext(ctx, r.ext, &res, q, bookID, memberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) CountReservations(ctx context.Context, bookID int, statuses ...model.ReservationStatus) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(reservationsTableName).
		Where(sq.Eq{"book_id": bookID}).
		Where(sq.Eq{"status": statuses}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, r.ext, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListBookReservations(ctx context.Context, bookID int) ([]model.BookReservationRow, error) {
	q := `
	select r.reservation_uid, m.member_uid, m.name as member_name, m.email as member_email,
	       r.reserve_date, r.status, r.expiry_date
	from reservations r
	join members m on m.id = r.member_id
	where r.book_id = $1 and r.status in ('Pending', 'Ready')
	order by r.reserve_date asc`
	var rows []model.BookReservationRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, bookID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListMemberReservations(ctx context.Context, memberID int) ([]model.MemberReservationRow, error) {
	q := `
	select r.reservation_uid, b.book_uid, b.title as book_title, b.author as book_author,
	       r.reserve_date, r.status, r.expiry_date,
	       (select count(*) from reservations r2
	        where r2.book_id = r.book_id and r2.status = 'Pending'
	          and r2.reserve_date < r.reserve_date) + 1 as queue_position
	from reservations r
	join books b on b.id = r.book_id
	where r.member_id = $1
	order by r.reserve_date desc`
	var rows []model.MemberReservationRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, memberID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListExpiredReady(ctx context.Context, today time.Time) ([]model.Reservation, error) {
	q := `
	select ` + reservationCols + `
	from reservations r
	join books b on b.id = r.book_id
	join members m on m.id = r.member_id
	where r.status = 'Ready' and r.expiry_date < $1
	order by r.expiry_date asc`
	var rows []model.Reservation
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, today); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListReadyExpiring(ctx context.Context, date time.Time) ([]model.ReminderRow, error) {
	q := `
	select r.reservation_uid, b.title as book_title, b.author as book_author,
	       m.name as member_name, m.email as member_email, r.expiry_date
	from reservations r
	join books b on b.id = r.book_id
	join members m on m.id = r.member_id
	where r.status = 'Ready' and r.expiry_date = $1`
	var rows []model.ReminderRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, date); err != nil {
		return nil, err
	}
	return rows, nil
}
