package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/platform/store"
)

const minCredentialLength = 3

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("expected `username` to be unique")
	ErrInvalidUsername    = errors.New("username must be at least 3 characters long")
	ErrInvalidPassword    = errors.New("password must be at least 3 characters long")
	ErrUserNotFound       = errors.New("user not found")
)

// BlogReader lists stored blogs so profiles can be populated.
type BlogReader interface {
	List(ctx context.Context) ([]blog.Blog, error)
}

type Service struct {
	repo  Repository
	blogs BlogReader
	cost  int
}

func NewService(repo Repository, blogs BlogReader) *Service {
	return &Service{repo: repo, blogs: blogs, cost: bcrypt.DefaultCost}
}

func (s *Service) Register(ctx context.Context, username, name, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minCredentialLength {
		return nil, ErrInvalidUsername
	}
	if len(password) < minCredentialLength {
		return nil, ErrInvalidPassword
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Profiles lists every user with the blogs they created.
func (s *Service) Profiles(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]blog.Blog, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
	}

	res := make([]Profile, 0, len(users))
	for _, u := range users {
		p := Profile{ID: u.ID, Username: u.Username, Name: u.Name, Blogs: []BlogRef{}}
		for _, id := range u.BlogIDs {
			b, ok := byID[id]
			if !ok {
				continue
			}
			p.Blogs = append(p.Blogs, BlogRef{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL})
		}
		res = append(res, p)
	}
	return res, nil
}

func (s *Service) Owner(ctx context.Context, userID string) (*blog.Owner, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &blog.Owner{ID: u.ID, Username: u.Username, Name: u.Name}, nil
}

func (s *Service) AttachBlog(ctx context.Context, userID, blogID string) error {
	return s.repo.AddBlog(ctx, userID, blogID)
}

func (s *Service) DetachBlog(ctx context.Context, userID, blogID string) error {
	return s.repo.RemoveBlog(ctx, userID, blogID)
}
