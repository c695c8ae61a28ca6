package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogcms/api/internal/models"
)

var ErrBlogNotFound = errors.New("blog not found")

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

// BlogFilter narrows List results. Zero values mean "no filter"; Status "all"
// is treated the same as empty.
type BlogFilter struct {
	Search      string
	CategoryID  string
	Status      string
	Featured    *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	Order       string
	Limit       int
	Offset      int
}

const blogJoinSelect = `
	SELECT b.id, b.title, b.content, b.category_id, b.author_id, b.status,
	       b.featured, b.views, b.cover_image, b.created_at, b.updated_at,
	       c.name, c.slug, u.name, u.email
	FROM blogs b
	JOIN categories c ON c.id = b.category_id
	JOIN users u ON u.id = b.author_id
`

func scanBlogItem(row pgx.Row) (models.BlogListItem, error) {
	var item models.BlogListItem
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Content,
		&item.CategoryID,
		&item.AuthorID,
		&item.Status,
		&item.Featured,
		&item.Views,
		&item.CoverImage,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.CategoryName,
		&item.CategorySlug,
		&item.AuthorName,
		&item.AuthorEmail,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BlogListItem{}, ErrBlogNotFound
		}
		return models.BlogListItem{}, err
	}
	return item, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog models.Blog) error {
	const query = `
		INSERT INTO blogs (
			id, title, content, category_id, author_id, status, featured, views, cover_image, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.CategoryID,
		blog.AuthorID,
		blog.Status,
		blog.Featured,
		blog.Views,
		blog.CoverImage,
	)
	return err
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (models.BlogListItem, error) {
	query := blogJoinSelect + ` WHERE b.id = $1`
	return scanBlogItem(r.pool.QueryRow(ctx, query, id))
}

func (r *BlogRepository) Update(ctx context.Context, blog models.Blog) error {
	const query = `
		UPDATE blogs
		SET title = $2, content = $3, category_id = $4, status = $5,
		    featured = $6, cover_image = $7, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.CategoryID,
		blog.Status,
		blog.Featured,
		blog.CoverImage,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM blogs WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// IncrementViews bumps the counter and returns the updated row.
func (r *BlogRepository) IncrementViews(ctx context.Context, id string) (models.BlogListItem, error) {
	const query = `UPDATE blogs SET views = views + 1 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return models.BlogListItem{}, err
	}
	if cmd.RowsAffected() == 0 {
		return models.BlogListItem{}, ErrBlogNotFound
	}
	return r.GetByID(ctx, id)
}

var blogSortColumns = map[string]string{
	"createdAt": "b.created_at",
	"updatedAt": "b.updated_at",
	"title":     "b.title",
	"views":     "b.views",
}

func (r *BlogRepository) List(ctx context.Context, filter BlogFilter) ([]models.BlogListItem, int, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conds = append(conds, fmt.Sprintf("b.title ILIKE %s", arg("%"+filter.Search+"%")))
	}
	if filter.CategoryID != "" {
		conds = append(conds, fmt.Sprintf("b.category_id = %s", arg(filter.CategoryID)))
	}
	if filter.Status != "" && filter.Status != "all" {
		conds = append(conds, fmt.Sprintf("b.status = %s", arg(filter.Status)))
	}
	if filter.Featured != nil {
		conds = append(conds, fmt.Sprintf("b.featured = %s", arg(*filter.Featured)))
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, fmt.Sprintf("b.created_at >= %s", arg(*filter.CreatedFrom)))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, fmt.Sprintf("b.created_at <= %s", arg(*filter.CreatedTo)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM blogs b` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := blogSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "b.created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		order = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	query := blogJoinSelect + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s",
			sortColumn, order, arg(limit), arg(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.BlogListItem
	for rows.Next() {
		var item models.BlogListItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Content,
			&item.CategoryID,
			&item.AuthorID,
			&item.Status,
			&item.Featured,
			&item.Views,
			&item.CoverImage,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.CategoryName,
			&item.CategorySlug,
			&item.AuthorName,
			&item.AuthorEmail,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
