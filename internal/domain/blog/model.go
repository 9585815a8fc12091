package blog

import "context"

// Owner is the populated view of the user that created a blog.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	UserID string `json:"-"`
	User   *Owner `json:"user,omitempty"`
}

type UpdateInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

type Repository interface {
	Create(ctx context.Context, b *Blog) error
	GetByID(ctx context.Context, id string) (*Blog, error)
	List(ctx context.Context) ([]Blog, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Blog, error)
	Delete(ctx context.Context, id string) error
}

// Owners resolves and maintains blog ownership on the user side.
type Owners interface {
	Owner(ctx context.Context, userID string) (*Owner, error)
	AttachBlog(ctx context.Context, userID, blogID string) error
	DetachBlog(ctx context.Context, userID, blogID string) error
}

// SummaryCache stores the last computed Summary. Get reports false on a miss.
type SummaryCache interface {
	Get(ctx context.Context) (*Summary, bool, error)
	Set(ctx context.Context, s Summary) error
	Invalidate(ctx context.Context) error
}
