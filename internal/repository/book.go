package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

type BookRepository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, includeDeleted bool) ([]model.BookCirculation, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "publisher", "year", "isbn", "category", "stock", "shelf_location").
		Values(req.Title, req.Author, req.Publisher, req.Year, req.ISBN, req.Category, req.Stock, req.ShelfLocation).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, wrapPgError(err)
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select("*").
		From(booksTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, wrapPgError(err)
	}
	return book, nil
}

// ListBooks returns the catalog with per-book circulation: total_copies
// is the shelf stock plus copies currently out, so reshelving a book
// never has to keep a second counter in sync.
func (r *repository) ListBooks(ctx context.Context, includeDeleted bool) ([]model.BookCirculation, error) {
	q := qb.Select(
		"b.id", "b.title", "b.author", "b.publisher", "b.year", "b.isbn", "b.category",
		"b.stock", "b.shelf_location", "b.is_deleted", "b.created_at", "b.updated_at",
		"b.stock + count(l.id) filter (where l.actual_return_date is null and not l.is_deleted) as total_copies",
	).
		From(booksTableName + " b").
		LeftJoin(loansTableName + " l on l.book_id = b.id").
		GroupBy("b.id").
		OrderBy("b.created_at")

	if !includeDeleted {
		q = q.Where(sq.Eq{"b.is_deleted": false})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookCirculation
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	sets := map[string]any{}
	if req.Title != nil {
		sets["title"] = *req.Title
	}
	if req.Author != nil {
		sets["author"] = *req.Author
	}
	if req.Publisher != nil {
		sets["publisher"] = *req.Publisher
	}
	if req.Year != nil {
		sets["year"] = *req.Year
	}
	if req.ISBN != nil {
		sets["isbn"] = *req.ISBN
	}
	if req.Category != nil {
		sets["category"] = *req.Category
	}
	if req.Stock != nil {
		sets["stock"] = *req.Stock
	}
	if req.ShelfLocation != nil {
		sets["shelf_location"] = *req.ShelfLocation
	}
	if len(sets) == 0 {
		return r.GetBook(ctx, id)
	}
	sets["updated_at"] = sq.Expr("now()")

	query, args, err := qb.Update(booksTableName).
		SetMap(sets).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, wrapPgError(err)
	}
	return book, nil
}
