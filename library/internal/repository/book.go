package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

const bookCols = `id, book_uid, title, author, isbn, publish_date, description, category, is_available`

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "title", "author", "isbn", "publish_date", "description", "category", "is_available").
		Values(book.BookUid, book.Title, book.Author, book.ISBN, book.PublishDate, book.Description, book.Category, book.IsAvailable).
		Suffix("returning " + bookCols).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select(bookCols).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, r.ext, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	q := qb.Select(bookCols).
		From(booksTableName).
		OrderBy("title asc")

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Available != nil {
		q = q.Where(sq.Eq{"is_available": *filter.Available})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}

	var books []model.Book
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	q, args, err := qb.Select(bookCols).
		From(booksTableName).
		Where(sq.Or{
			sq.ILike{"title": fmt.Sprint("%", query, "%")},
			sq.ILike{"author": fmt.Sprint("%", query, "%")},
			sq.ILike{"isbn": fmt.Sprint("%", query, "%")},
		}).
		OrderBy("title asc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := sqlx.SelectContext(ctx, r.ext, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid string, req model.UpdateBookRequest) (model.Book, error) {
	upd := qb.Update(booksTableName).Where(sq.Eq{"book_uid": bookUid})
	if req.Title != nil {
		upd = upd.Set("title", *req.Title)
	}
	if req.Author != nil {
		upd = upd.Set("author", *req.Author)
	}
	if req.ISBN != nil {
		upd = upd.Set("isbn", *req.ISBN)
	}
	if req.PublishDate != nil {
		upd = upd.Set("publish_date", req.PublishDate.Time)
	}
	if req.Description != nil {
		upd = upd.Set("description", *req.Description)
	}
	if req.Category != nil {
		upd = upd.Set("category", *req.Category)
	}

	query, args, err := upd.Suffix("returning " + bookCols).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, r.ext, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookUid string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
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

func (r *repository) SetBookAvailable(ctx context.Context, bookID int, available bool) error {
	query, args, err := qb.Update(booksTableName).
		Set("is_available", available).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

func (r *repository) ActiveLoanByBook(ctx context.Context, bookID int) (model.LoanSummary, error) {
	q := `
	select l.loan_uid, m.member_uid, m.name as member_name, l.return_date
	from loans l
	join members m on m.id = l.member_id
	where l.book_id = $1 and not l.returned
	limit 1`
	var summary model.LoanSummary
	if err := sqlx.GetContext(ctx, r.ext, &summary, q, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanSummary{}, errs.ErrNotFound
		}
		return model.LoanSummary{}, err
	}
	return summary, nil
}
