package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bookhaven/library-service/library/internal/model"
)

func (r *repository) ActiveLoansReport(ctx context.Context, today time.Time) (model.ActiveLoansReport, error) {
	q := `
	select l.loan_uid, b.book_uid, b.title as book_title, b.author as book_author,
	       m.member_uid, m.name as member_name, m.email as member_email, m.phone as member_phone,
	       l.loan_date, l.return_date,
	       (l.return_date - $1::date)::int as days_remaining,
	       (l.return_date < $1) as is_overdue,
	       greatest(0, $1::date - l.return_date)::int as days_overdue,
	       case when l.return_date < $1 then 'Overdue'
	            when l.return_date - $1::date <= 3 then 'Due Soon'
	            else 'Active' end as status
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where not l.returned
	order by l.return_date asc`
	var rows []model.LoanReportRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, today); err != nil {
		return model.ActiveLoansReport{}, err
	}

	stats := model.ActiveLoansStats{TotalActiveLoans: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case model.LoanStatusOverdue:
			stats.OverdueLoans++
		case model.LoanStatusDueSoon:
			stats.DueSoonLoans++
		}
	}
	stats.ActiveLoans = stats.TotalActiveLoans - stats.OverdueLoans - stats.DueSoonLoans

	return model.ActiveLoansReport{Loans: rows, Statistics: stats}, nil
}

func (r *repository) OverdueReport(ctx context.Context, today time.Time, finePerDay decimal.Decimal) (model.OverdueReport, error) {
	q := `
	select l.loan_uid, b.book_uid, b.title as book_title, b.author as book_author,
	       m.member_uid, m.name as member_name, m.email as member_email, m.phone as member_phone,
	       l.loan_date, l.return_date,
	       ($1::date - l.return_date)::int as days_overdue,
	       (($1::date - l.return_date) * $2::numeric) as estimated_fine
	from loans l
	join books b on b.id = l.book_id
	join members m on m.id = l.member_id
	where not l.returned and l.return_date < $1
	order by days_overdue desc`
	var rows []model.OverdueReportRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, today, finePerDay); err != nil {
		return model.OverdueReport{}, err
	}

	report := model.OverdueReport{OverdueLoans: rows}
	report.Statistics.TotalOverdue = len(rows)
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.EstimatedFine)
	}
	report.Statistics.TotalEstimatedFines = total
	return report, nil
}

func (r *repository) PopularBooks(ctx context.Context, limit int) ([]model.PopularBookRow, error) {
	q := `
	select b.book_uid, b.title, b.author, b.category,
	       count(l.id) as loan_count,
	       count(l.id) filter (where not l.returned) as current_loans,
	       count(res.id) as reservation_count
	from books b
	left join loans l on l.book_id = b.id
	left join reservations res on res.book_id = b.id and res.status = 'Pending'
	group by b.id, b.book_uid, b.title, b.author, b.category
	order by loan_count desc, reservation_count desc
	limit $1`
	var rows []model.PopularBookRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MemberActivity(ctx context.Context, limit int) ([]model.MemberActivityRow, error) {
	q := `
	select m.member_uid, m.name, m.membership_id, m.email,
	       count(l.id) as total_loans,
	       count(l.id) filter (where not l.returned) as active_loans,
	       count(l.id) filter (where not l.returned and l.return_date < current_date) as overdue_loans,
	       max(l.loan_date) as last_loan_date
	from members m
	left join loans l on l.member_id = m.id
	where m.status = 'Active'
	group by m.id, m.member_uid, m.name, m.membership_id, m.email
	order by total_loans desc, last_loan_date desc nulls last
	limit $1`
	var rows []model.MemberActivityRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) LibraryStatistics(ctx context.Context, today time.Time) (model.LibraryStatistics, error) {
	q := `
	select
	    (select count(*) from books)                                              as total_books,
	    (select count(*) from books where is_available)                           as available_books,
	    (select count(*) from books where not is_available)                       as books_on_loan,
	    (select count(*) from members)                                            as total_members,
	    (select count(*) from members where status = 'Active')                    as active_members,
	    (select count(*) from loans)                                              as total_loans,
	    (select count(*) from loans where not returned)                           as active_loans,
	    (select count(*) from loans where not returned and return_date < $1)      as overdue_loans,
	    (select count(*) from reservations where status = 'Pending')              as pending_reservations,
	    (select count(*) from reservations where status = 'Ready')                as ready_reservations`
	var stats model.LibraryStatistics
	if err := sqlx.GetContext(ctx, r.ext, &stats, q, today); err != nil {
		return model.LibraryStatistics{}, err
	}
	return stats, nil
}
