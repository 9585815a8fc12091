package blog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bloglist-service/internal/platform/store"
)

var (
	ErrMissingFields = errors.New("title and url are required")
	ErrInvalidLikes  = errors.New("likes must not be negative")
	ErrBlogNotFound  = errors.New("blog not found")
	ErrNotOwner      = errors.New("only the creator can delete a blog")
	ErrUnknownUser   = errors.New("user missing or invalid")
)

type Service struct {
	repo   Repository
	owners Owners
	cache  SummaryCache

	// gen counts completed writes. Stats only stores a summary when no
	// write finished while it was being computed.
	genMu sync.Mutex
	gen   uint64
}

func NewService(repo Repository, owners Owners) *Service {
	return &Service{repo: repo, owners: owners}
}

// WithCache makes Stats read through c and lets writes invalidate it.
func (s *Service) WithCache(c SummaryCache) *Service {
	s.cache = c
	return s
}

// Create stores b on behalf of userID. A nil likes defaults to zero.
func (s *Service) Create(ctx context.Context, userID string, b *Blog, likes *int) error {
	if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.URL) == "" {
		return ErrMissingFields
	}
	b.Likes = 0
	if likes != nil {
		if *likes < 0 {
			return ErrInvalidLikes
		}
		b.Likes = *likes
	}

	if userID == "" {
		return ErrUnknownUser
	}
	owner, err := s.owners.Owner(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownUser
		}
		return err
	}
	b.UserID = owner.ID

	if err := s.repo.Create(ctx, b); err != nil {
		return err
	}
	if err := s.owners.AttachBlog(ctx, owner.ID, b.ID); err != nil {
		// roll back so no ownerless blog is left behind
		if delErr := s.repo.Delete(ctx, b.ID); delErr != nil && !errors.Is(delErr, store.ErrNotFound) {
			err = errors.Join(err, delErr)
		}
		s.invalidate(ctx)
		return err
	}
	b.User = owner
	s.invalidate(ctx)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	s.populate(ctx, b)
	return b, nil
}

// List returns every blog with its owner populated.
func (s *Service) List(ctx context.Context) ([]Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]*Owner)
	for i := range blogs {
		uid := blogs[i].UserID
		if uid == "" {
			continue
		}
		o, ok := owners[uid]
		if !ok {
			var err error
			o, err = s.owners.Owner(ctx, uid)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, err
			}
			owners[uid] = o
		}
		blogs[i].User = o
	}
	return blogs, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*Blog, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, ErrMissingFields
	}
	if input.URL != nil && strings.TrimSpace(*input.URL) == "" {
		return nil, ErrMissingFields
	}
	if input.Likes != nil && *input.Likes < 0 {
		return nil, ErrInvalidLikes
	}
	b, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, notFound(err)
	}
	s.populate(ctx, b)
	s.invalidate(ctx)
	return b, nil
}

// Delete removes the blog if userID owns it.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if userID == "" || b.UserID != userID {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	if err := s.owners.DetachBlog(ctx, userID, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Stats summarizes all stored blogs, serving from the cache when one is set.
func (s *Service) Stats(ctx context.Context) (Summary, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx); err == nil && ok {
			return *cached, nil
		}
	}

	gen := s.generation()
	blogs, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	summary := Summarize(blogs)

	if s.cache != nil {
		s.genMu.Lock()
		if s.gen == gen {
			_ = s.cache.Set(ctx, summary)
		}
		s.genMu.Unlock()
	}
	return summary, nil
}

func (s *Service) populate(ctx context.Context, b *Blog) {
	if b.UserID == "" {
		return
	}
	if o, err := s.owners.Owner(ctx, b.UserID); err == nil {
		b.User = o
	}
}

func (s *Service) generation() uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gen
}

// invalidate must run after the write it follows has reached the repository.
func (s *Service) invalidate(ctx context.Context) {
	s.genMu.Lock()
	s.gen++
	s.genMu.Unlock()
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}
