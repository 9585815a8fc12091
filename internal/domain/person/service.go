package person

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bloglist-service/internal/platform/store"
)

const (
	minNameLength   = 3
	minNumberLength = 8
)

var (
	ErrMissingFields  = errors.New("name or number (possibly both) is missing")
	ErrNameTooShort   = errors.New("name should be at least 3 characters")
	ErrInvalidNumber  = errors.New("invalid phone number")
	ErrNameTaken      = errors.New("name must be unique")
	ErrPersonNotFound = errors.New("person not found")
)

// two or three digits, a dash, then one or more digits
var numberPattern = regexp.MustCompile(`^\d{2,3}-\d+$`)

type Service struct {
	repo Repository
}

// NumberError names the rejected number; it matches ErrInvalidNumber.
type NumberError struct {
	Number string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s is not a valid phone number", e.Number)
}

func (e *NumberError) Unwrap() error { return ErrInvalidNumber }

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Validate reports the first rule p breaks.
func Validate(p Person) error {
	if p.Name == "" || p.Number == "" {
		return ErrMissingFields
	}
	if len([]rune(p.Name)) < minNameLength {
		return ErrNameTooShort
	}
	if len(p.Number) < minNumberLength || !numberPattern.MatchString(p.Number) {
		return &NumberError{Number: p.Number}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, name, number string) (*Person, error) {
	p := &Person{Name: strings.TrimSpace(name), Number: strings.TrimSpace(number)}
	if err := Validate(*p); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, p.Name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

// Update replaces name and number of an existing entry, running the same
// validators as Create.
func (s *Service) Update(ctx context.Context, id, name, number string) (*Person, error) {
	p := &Person{ID: id, Name: strings.TrimSpace(name), Number: strings.TrimSpace(number)}
	if err := Validate(*p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, notFound(err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return notFound(s.repo.Delete(ctx, id))
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrPersonNotFound
	}
	return err
}
