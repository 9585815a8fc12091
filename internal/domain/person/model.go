package person

import "context"

type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	GetByName(ctx context.Context, name string) (*Person, error)
	List(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
