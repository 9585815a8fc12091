package blog

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"bloglist-service/internal/platform/store"
)

type memoryBlogRepo struct {
	mu     sync.Mutex
	blogs  map[string]*Blog
	order  []string
	nextID int
	lists  int
}

func newMemoryBlogRepo() *memoryBlogRepo {
	return &memoryBlogRepo{blogs: make(map[string]*Blog), nextID: 1}
}

func (r *memoryBlogRepo) Create(ctx context.Context, b *Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = strconv.Itoa(r.nextID)
	r.nextID++
	copyBlog := *b
	r.blogs[b.ID] = &copyBlog
	r.order = append(r.order, b.ID)
	return nil
}

func (r *memoryBlogRepo) GetByID(ctx context.Context, id string) (*Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copyBlog := *b
	return &copyBlog, nil
}

func (r *memoryBlogRepo) List(ctx context.Context) ([]Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	res := []Blog{}
	for _, id := range r.order {
		if b, ok := r.blogs[id]; ok {
			res = append(res, *b)
		}
	}
	return res, nil
}

func (r *memoryBlogRepo) Update(ctx context.Context, id string, input UpdateInput) (*Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if input.Likes != nil {
		b.Likes = *input.Likes
	}
	if input.Title != nil {
		b.Title = *input.Title
	}
	copyBlog := *b
	return &copyBlog, nil
}

func (r *memoryBlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

type fakeOwners struct {
	mu        sync.Mutex
	users     map[string]*Owner
	blogs     map[string][]string
	ownerErr  error
	attachErr error
}

func newFakeOwners(ids ...string) *fakeOwners {
	f := &fakeOwners{users: make(map[string]*Owner), blogs: make(map[string][]string)}
	for _, id := range ids {
		f.users[id] = &Owner{ID: id, Username: "user" + id, Name: "User " + id}
	}
	return f
}

func (f *fakeOwners) Owner(ctx context.Context, userID string) (*Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ownerErr != nil {
		return nil, f.ownerErr
	}
	o, ok := f.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copyOwner := *o
	return &copyOwner, nil
}

func (f *fakeOwners) AttachBlog(ctx context.Context, userID, blogID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attachErr != nil {
		return f.attachErr
	}
	f.blogs[userID] = append(f.blogs[userID], blogID)
	return nil
}

func (f *fakeOwners) DetachBlog(ctx context.Context, userID, blogID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := f.blogs[userID]
	for i, id := range ids {
		if id == blogID {
			f.blogs[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memorySummaryCache struct {
	mu          sync.Mutex
	summary     *Summary
	invalidated int
}

func (c *memorySummaryCache) Get(ctx context.Context) (*Summary, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary == nil {
		return nil, false, nil
	}
	return c.summary, true, nil
}

func (c *memorySummaryCache) Set(ctx context.Context, s Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = &s
	return nil
}

func (c *memorySummaryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = nil
	c.invalidated++
	return nil
}

// gatedBlogRepo parks the next List call after it has read the blogs, until
// release is closed.
type gatedBlogRepo struct {
	*memoryBlogRepo
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newGatedBlogRepo() *gatedBlogRepo {
	return &gatedBlogRepo{
		memoryBlogRepo: newMemoryBlogRepo(),
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
}

func (r *gatedBlogRepo) List(ctx context.Context) ([]Blog, error) {
	res, err := r.memoryBlogRepo.List(ctx)
	if r.armed.CompareAndSwap(true, false) {
		close(r.entered)
		<-r.release
	}
	return res, err
}

func intPtr(v int) *int {
	return &v
}

func TestCreateValidationAndDefaults(t *testing.T) {
	repo := newMemoryBlogRepo()
	owners := newFakeOwners("u1")
	svc := NewService(repo, owners)
	ctx := context.Background()

	if err := svc.Create(ctx, "u1", &Blog{Author: "no title or url"}, intPtr(1)); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected missing fields error, got %v", err)
	}
	if err := svc.Create(ctx, "u1", &Blog{Title: "t", URL: "u"}, intPtr(-1)); !errors.Is(err, ErrInvalidLikes) {
		t.Fatalf("expected invalid likes error, got %v", err)
	}
	if err := svc.Create(ctx, "ghost", &Blog{Title: "t", URL: "u"}, nil); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected unknown user error, got %v", err)
	}

	b := &Blog{Title: "no default likes", Author: "mister nolikes", URL: "no.likes.url"}
	if err := svc.Create(ctx, "u1", b, nil); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if b.Likes != 0 {
		t.Fatalf("expected likes to default to 0, got %d", b.Likes)
	}
	if b.User == nil || b.User.Username != "useru1" {
		t.Fatalf("expected owner to be populated, got %+v", b.User)
	}
	if got := owners.blogs["u1"]; len(got) != 1 || got[0] != b.ID {
		t.Fatalf("expected blog attached to owner, got %v", got)
	}
}

func TestDeleteRequiresOwner(t *testing.T) {
	repo := newMemoryBlogRepo()
	owners := newFakeOwners("u1", "u2")
	svc := NewService(repo, owners)
	ctx := context.Background()

	b := &Blog{Title: "diary of Tom", Author: "Tom Handrik", URL: "diary.tom"}
	if err := svc.Create(ctx, "u1", b, intPtr(8)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, "u2", b.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected not owner error, got %v", err)
	}
	if err := svc.Delete(ctx, "u1", "missing"); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := svc.Delete(ctx, "u1", b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(owners.blogs["u1"]) != 0 {
		t.Fatalf("expected blog detached from owner")
	}
	if _, err := svc.Get(ctx, b.ID); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected deleted blog to be gone, got %v", err)
	}
}

func TestUpdateLikes(t *testing.T) {
	repo := newMemoryBlogRepo()
	svc := NewService(repo, newFakeOwners("u1"))
	ctx := context.Background()

	b := &Blog{Title: "Sample Blog", Author: "Anonymous", URL: "random.url"}
	if err := svc.Create(ctx, "u1", b, intPtr(5)); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, b.ID, UpdateInput{Likes: intPtr(6)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Likes != 6 {
		t.Fatalf("expected 6 likes, got %d", updated.Likes)
	}
	if _, err := svc.Update(ctx, "missing", UpdateInput{Likes: intPtr(1)}); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Update(ctx, b.ID, UpdateInput{Likes: intPtr(-3)}); !errors.Is(err, ErrInvalidLikes) {
		t.Fatalf("expected invalid likes, got %v", err)
	}
}

func TestStatsUsesCache(t *testing.T) {
	repo := newMemoryBlogRepo()
	cache := &memorySummaryCache{}
	svc := NewService(repo, newFakeOwners("u1")).WithCache(cache)
	ctx := context.Background()

	for _, b := range sampleBlogs() {
		b := b
		if err := svc.Create(ctx, "u1", &b, intPtr(b.Likes)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	first, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if first.TotalLikes != 42 || first.MostLikes == nil || first.MostLikes.Likes != 33 {
		t.Fatalf("unexpected summary %+v", first)
	}
	listsAfterFirst := repo.lists

	if _, err := svc.Stats(ctx); err != nil {
		t.Fatalf("cached stats: %v", err)
	}
	if repo.lists != listsAfterFirst {
		t.Fatalf("expected cached summary to be used")
	}

	if err := svc.Create(ctx, "u1", &Blog{Title: "new", Author: "Author 1", URL: "n"}, intPtr(1)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.summary != nil {
		t.Fatalf("expected write to invalidate the cache")
	}
	again, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if again.TotalLikes != 43 {
		t.Fatalf("expected fresh total 43, got %d", again.TotalLikes)
	}
}

func TestStatsOnEmptyStore(t *testing.T) {
	svc := NewService(newMemoryBlogRepo(), newFakeOwners())
	s, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.TotalLikes != 0 || s.FavoriteBlog != nil || s.MostBlogs != nil || s.MostLikes != nil {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestStatsDoesNotCacheSummaryOverlappingWrite(t *testing.T) {
	repo := newGatedBlogRepo()
	cache := &memorySummaryCache{}
	svc := NewService(repo, newFakeOwners("u1")).WithCache(cache)
	ctx := context.Background()

	repo.armed.Store(true)
	inFlight := make(chan Summary, 1)
	go func() {
		s, err := svc.Stats(ctx)
		if err != nil {
			t.Errorf("stats: %v", err)
		}
		inFlight <- s
	}()

	<-repo.entered
	if err := svc.Create(ctx, "u1", &Blog{Title: "late", Author: "Author 1", URL: "l"}, intPtr(7)); err != nil {
		t.Fatalf("create: %v", err)
	}
	close(repo.release)

	if old := <-inFlight; old.TotalLikes != 0 {
		t.Fatalf("in-flight stats should have read the empty store, got %d", old.TotalLikes)
	}

	fresh, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if fresh.TotalLikes != 7 {
		t.Fatalf("total likes after completed create = %d, want 7", fresh.TotalLikes)
	}
}

func TestCreateRollsBackWhenAttachFails(t *testing.T) {
	repo := newMemoryBlogRepo()
	owners := newFakeOwners("u1")
	owners.attachErr = errors.New("users collection unavailable")
	cache := &memorySummaryCache{}
	svc := NewService(repo, owners).WithCache(cache)
	ctx := context.Background()

	err := svc.Create(ctx, "u1", &Blog{Title: "orphan", URL: "o"}, intPtr(3))
	if !errors.Is(err, owners.attachErr) {
		t.Fatalf("expected attach error, got %v", err)
	}
	blogs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(blogs) != 0 {
		t.Fatalf("expected created blog to be removed, got %+v", blogs)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidated once, got %d", cache.invalidated)
	}
}

func TestListOwnerLookup(t *testing.T) {
	repo := newMemoryBlogRepo()
	owners := newFakeOwners("u1", "u2")
	svc := NewService(repo, owners)
	ctx := context.Background()

	for _, uid := range []string{"u1", "u2"} {
		if err := svc.Create(ctx, uid, &Blog{Title: "by " + uid, URL: uid}, nil); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	owners.mu.Lock()
	delete(owners.users, "u2")
	owners.mu.Unlock()
	blogs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list with a removed owner: %v", err)
	}
	if blogs[0].User == nil || blogs[1].User != nil {
		t.Fatalf("expected only the first owner populated, got %+v %+v", blogs[0].User, blogs[1].User)
	}

	owners.mu.Lock()
	owners.ownerErr = errors.New("connection reset")
	owners.mu.Unlock()
	if _, err := svc.List(ctx); !errors.Is(err, owners.ownerErr) {
		t.Fatalf("expected lookup error to surface, got %v", err)
	}
}
