package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"bloglist-service/internal/domain/person"
)

type PersonRepo struct {
	db *sql.DB
}

func NewPersonRepo(db *sql.DB) *PersonRepo {
	return &PersonRepo{db: db}
}

func (r *PersonRepo) Create(ctx context.Context, p *person.Person) error {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx, `INSERT INTO persons (id, name, number) VALUES ($1, $2, $3)`,
		id, p.Name, p.Number)
	if err != nil {
		return translate(err)
	}
	p.ID = id.String()
	return nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id string) (*person.Person, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, `SELECT id::text, name, number FROM persons WHERE id = $1`, pid)
}

func (r *PersonRepo) GetByName(ctx context.Context, name string) (*person.Person, error) {
	return r.getOne(ctx, `SELECT id::text, name, number FROM persons WHERE name = $1`, name)
}

func (r *PersonRepo) List(ctx context.Context) ([]person.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id::text, name, number FROM persons ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []person.Person{}
	for rows.Next() {
		var p person.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Number); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *PersonRepo) Update(ctx context.Context, p *person.Person) error {
	pid, err := parseID(p.ID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE persons SET name = $1, number = $2 WHERE id = $3`,
		p.Name, p.Number, pid)
	if err != nil {
		return translate(err)
	}
	return affectedOrNotFound(res)
}

func (r *PersonRepo) Delete(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, pid)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *PersonRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&n)
	return n, err
}

func (r *PersonRepo) getOne(ctx context.Context, query string, arg any) (*person.Person, error) {
	p := &person.Person{}
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&p.ID, &p.Name, &p.Number); err != nil {
		return nil, translate(err)
	}
	return p, nil
}
