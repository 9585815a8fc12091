package person

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"bloglist-service/internal/platform/store"
)

type memoryPersonRepo struct {
	mu      sync.Mutex
	persons map[string]*Person
	nextID  int
}

func newMemoryPersonRepo() *memoryPersonRepo {
	return &memoryPersonRepo{persons: make(map[string]*Person), nextID: 1}
}

func (r *memoryPersonRepo) Create(ctx context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = strconv.Itoa(r.nextID)
	r.nextID++
	copyPerson := *p
	r.persons[p.ID] = &copyPerson
	return nil
}

func (r *memoryPersonRepo) GetByID(ctx context.Context, id string) (*Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.persons[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copyPerson := *p
	return &copyPerson, nil
}

func (r *memoryPersonRepo) GetByName(ctx context.Context, name string) (*Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.persons {
		if p.Name == name {
			copyPerson := *p
			return &copyPerson, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *memoryPersonRepo) List(ctx context.Context) ([]Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []Person{}
	for _, p := range r.persons {
		res = append(res, *p)
	}
	return res, nil
}

func (r *memoryPersonRepo) Update(ctx context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.persons[p.ID]; !ok {
		return store.ErrNotFound
	}
	copyPerson := *p
	r.persons[p.ID] = &copyPerson
	return nil
}

func (r *memoryPersonRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.persons[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.persons, id)
	return nil
}

func (r *memoryPersonRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.persons)), nil
}

func TestValidate(t *testing.T) {
	cases := []struct {
		p    Person
		want error
	}{
		{Person{Name: "", Number: "040-1234567"}, ErrMissingFields},
		{Person{Name: "Arto Hellas", Number: ""}, ErrMissingFields},
		{Person{Name: "Al", Number: "040-1234567"}, ErrNameTooShort},
		{Person{Name: "Ada Lovelace", Number: "39-44"}, ErrInvalidNumber},
		{Person{Name: "Ada Lovelace", Number: "1234-5678"}, ErrInvalidNumber},
		{Person{Name: "Ada Lovelace", Number: "0401234567"}, ErrInvalidNumber},
		{Person{Name: "Ada Lovelace", Number: "04-12345a"}, ErrInvalidNumber},
		{Person{Name: "Ada Lovelace", Number: "09-1234556"}, nil},
		{Person{Name: "Dan Abramov", Number: "040-22334455"}, nil},
	}
	for _, c := range cases {
		if err := Validate(c.p); !errors.Is(err, c.want) {
			t.Fatalf("Validate(%+v) = %v, want %v", c.p, err, c.want)
		}
	}
}

func TestInvalidNumberMessage(t *testing.T) {
	err := Validate(Person{Name: "Ada Lovelace", Number: "12-34"})
	if err == nil || err.Error() != "12-34 is not a valid phone number" {
		t.Fatalf("unexpected error message %v", err)
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	svc := NewService(newMemoryPersonRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "Mary Poppendieck", "39-23-6423122")
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected invalid number, got %v", err)
	}

	p, err = svc.Create(ctx, "Mary Poppendieck", "39-236423122")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "Mary Poppendieck", "040-123456"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected name taken, got %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, "Mary Poppendieck", "040-7654321")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Number != "040-7654321" {
		t.Fatalf("expected updated number, got %s", updated.Number)
	}
	if _, err := svc.Update(ctx, p.ID, "Mary Poppendieck", "bad"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected validators to run on update, got %v", err)
	}
	if _, err := svc.Update(ctx, "999", "Someone Else", "040-7654321"); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}

	n, err := svc.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected count 1, got %d (%v)", n, err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
