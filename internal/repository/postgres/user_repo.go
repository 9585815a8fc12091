package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"bloglist-service/internal/domain/user"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	id := uuid.New()
	query := `
        INSERT INTO users (id, username, name, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `
	if err := r.db.QueryRowContext(ctx, query, id, u.Username, u.Name, u.PasswordHash).
		Scan(&u.CreatedAt); err != nil {
		return translate(err)
	}
	u.ID = id.String()
	return nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getOne(ctx, `
        SELECT id::text, username, name, password_hash, created_at
        FROM users WHERE username = $1
    `, username)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, `
        SELECT id::text, username, name, password_hash, created_at
        FROM users WHERE id = $1
    `, uid)
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id::text, username, name, password_hash, created_at
        FROM users ORDER BY created_at
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		ids, err := r.blogIDs(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].BlogIDs = ids
	}
	return users, nil
}

// AddBlog links the blog to the user; ownership lives in blogs.user_id.
func (r *UserRepo) AddBlog(ctx context.Context, userID, blogID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	bid, err := parseID(blogID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE blogs SET user_id = $1 WHERE id = $2`, uid, bid)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// RemoveBlog only checks the user exists: deleting the blog row already
// drops the link.
func (r *UserRepo) RemoveBlog(ctx context.Context, userID, blogID string) error {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return err
	}
	bid, err := parseID(blogID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE blogs SET user_id = NULL WHERE id = $1 AND user_id::text = $2`, bid, userID)
	return err
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u := &user.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	ids, err := r.blogIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.BlogIDs = ids
	return u, nil
}

func (r *UserRepo) blogIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id::text FROM blogs WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
