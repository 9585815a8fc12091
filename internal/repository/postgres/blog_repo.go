package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"bloglist-service/internal/domain/blog"
)

const blogColumns = `id::text, title, author, url, likes, COALESCE(user_id::text, '')`

type BlogRepo struct {
	db *sql.DB
}

func NewBlogRepo(db *sql.DB) *BlogRepo {
	return &BlogRepo{db: db}
}

func (r *BlogRepo) Create(ctx context.Context, b *blog.Blog) error {
	id := uuid.New()
	var owner any
	if b.UserID != "" {
		uid, err := parseID(b.UserID)
		if err != nil {
			return err
		}
		owner = uid
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO blogs (id, title, author, url, likes, user_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, id, b.Title, b.Author, b.URL, b.Likes, owner)
	if err != nil {
		return translate(err)
	}
	b.ID = id.String()
	return nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*blog.Blog, error) {
	bid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	b := &blog.Blog{}
	err = r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, bid).
		Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID)
	if err != nil {
		return nil, translate(err)
	}
	return b, nil
}

// List returns blogs in insertion order.
func (r *BlogRepo) List(ctx context.Context) ([]blog.Blog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []blog.Blog{}
	for rows.Next() {
		var b blog.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *BlogRepo) Update(ctx context.Context, id string, input blog.UpdateInput) (*blog.Blog, error) {
	bid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	b := &blog.Blog{}
	err = r.db.QueryRowContext(ctx, `
        UPDATE blogs SET
            title  = COALESCE($2, title),
            author = COALESCE($3, author),
            url    = COALESCE($4, url),
            likes  = COALESCE($5, likes)
        WHERE id = $1
        RETURNING `+blogColumns,
		bid, input.Title, input.Author, input.URL, input.Likes,
	).Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID)
	if err != nil {
		return nil, translate(err)
	}
	return b, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	bid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, bid)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}
