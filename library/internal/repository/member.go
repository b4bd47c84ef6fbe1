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

const memberCols = `id, member_uid, name, membership_id, email, phone, address, status, join_date`

func (r *repository) CreateMember(ctx context.Context, member model.Member) (model.Member, error) {
	query, args, err := qb.Insert(membersTableName).
		Columns("member_uid", "name", "membership_id", "email", "phone", "address", "status", "join_date").
		Values(member.MemberUid, member.Name, member.MembershipID, member.Email, member.Phone, member.Address, member.Status, member.JoinDate).
		Suffix("returning " + memberCols).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var created model.Member
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Member{}, errors.Wrap(errs.ErrValidation, "membership id already registered")
		}
		r.log.Error("CreateMember", zap.String("q", query), zap.Any("args", args))
		return model.Member{}, err
	}
	return created, nil
}

func (r *repository) GetMember(ctx context.Context, memberUid string) (model.Member, error) {
	query, args, err := qb.Select(memberCols).
		From(membersTableName).
		Where(sq.Eq{"member_uid": memberUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var member model.Member
	if err := sqlx.GetContext(ctx, r.ext, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) ListMembers(ctx context.Context, status model.MemberStatus, page, size int) (model.ListMembers, error) {
	q := qb.Select(memberCols).
		From(membersTableName).
		OrderBy("name asc")

	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListMembers{}, err
	}

	var members []model.Member
	if err := sqlx.SelectContext(ctx, r.ext, &members, query, args...); err != nil {
		return model.ListMembers{}, err
	}

	return model.ListMembers{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(members),
		},
		Items: members,
	}, nil
}

func (r *repository) UpdateMember(ctx context.Context, memberUid string, req model.UpdateMemberRequest) (model.Member, error) {
	upd := qb.Update(membersTableName).Where(sq.Eq{"member_uid": memberUid})
	if req.Name != nil {
		upd = upd.Set("name", *req.Name)
	}
	if req.Email != nil {
		upd = upd.Set("email", *req.Email)
	}
	if req.Phone != nil {
		upd = upd.Set("phone", *req.Phone)
	}
	if req.Address != nil {
		upd = upd.Set("address", *req.Address)
	}
	if req.Status != nil {
		upd = upd.Set("status", *req.Status)
	}

	query, args, err := upd.Suffix("returning " + memberCols).ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var member model.Member
	if err := sqlx.GetContext(ctx, r.ext, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) DeleteMember(ctx context.Context, memberUid string) error {
	query, args, err := qb.Delete(membersTableName).
		Where(sq.Eq{"member_uid": memberUid}).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return err
	}
	var id int
	if err := sqlx.GetContext(ctx, r.ext, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *repository) CountMemberActiveLoans(ctx context.Context, memberID int) (int, error) {
	q := `select count(*) from loans where member_id = $1 and not returned`
	var count int
	if err := sqlx.GetContext(ctx, r.ext, &count, q, memberID); err != nil {
		return 0, err
	}
	return count, nil
}

const loanCols = `
	l.id, l.loan_uid, l.book_id, b.book_uid, l.member_id, m.member_uid,
	l.loan_date, l.return_date, l.returned, l.actual_return_date, l.fine_amount`

func (r *repository) ListMemberActiveLoans(ctx context.Context, memberID int) ([]model.Loan, error) {
	q := `
	select ` + loanCols + `
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where l.member_id = $1 and not l.returned
	order by l.loan_date desc`
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext, &loans, q, memberID); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) ListMemberOverdueLoans(ctx context.Context, memberID int, today time.Time) ([]model.Loan, error) {
	q := `
	select ` + loanCols + `
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where l.member_id = $1 and not l.returned and l.return_date < $2
	order by l.return_date asc`
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext, &loans, q, memberID, today); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) ListMemberLoanHistory(ctx context.Context, memberID, limit int) ([]model.Loan, error) {
	q := `
	select ` + loanCols + `
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where l.member_id = $1 and l.returned
	order by l.loan_date desc
	limit $2`
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext, &loans, q, memberID, limit); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) CountMemberActiveReservations(ctx context.Context, memberID int) (int, error) {
	q := `select count(*) from reservations where member_id = $1 and status in ('Pending', 'Ready')`
	var count int
	if err := sqlx.GetContext(ctx, r.ext, &count, q, memberID); err != nil {
		return 0, err
	}
	return count, nil
}
