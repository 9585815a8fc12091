package blog

// AuthorBlogs is the author with the most blogs and how many they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the author whose blogs collected the most likes in total.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Summary bundles every aggregate over one list of blogs. Nil fields mean
// the list was empty.
type Summary struct {
	TotalLikes   int          `json:"total_likes"`
	FavoriteBlog *Blog        `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs `json:"most_blogs"`
	MostLikes    *AuthorLikes `json:"most_likes"`
}

func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties keep the earliest
// blog in the list.
func FavoriteBlog(blogs []Blog) (Blog, bool) {
	if len(blogs) == 0 {
		return Blog{}, false
	}
	fav := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > fav.Likes {
			fav = b
		}
	}
	return fav, true
}

// MostBlogs returns the author with the most blogs. Ties go to the author
// that appears first in the list.
func MostBlogs(blogs []Blog) (AuthorBlogs, bool) {
	if len(blogs) == 0 {
		return AuthorBlogs{}, false
	}
	author, count := tallyBy(blogs, func(Blog) int { return 1 }).top()
	return AuthorBlogs{Author: author, Blogs: count}, true
}

// MostLikes returns the author with the highest like total. Ties go to the
// author that appears first in the list.
func MostLikes(blogs []Blog) (AuthorLikes, bool) {
	if len(blogs) == 0 {
		return AuthorLikes{}, false
	}
	author, likes := tallyBy(blogs, func(b Blog) int { return b.Likes }).top()
	return AuthorLikes{Author: author, Likes: likes}, true
}

func Summarize(blogs []Blog) Summary {
	s := Summary{TotalLikes: TotalLikes(blogs)}
	if fav, ok := FavoriteBlog(blogs); ok {
		s.FavoriteBlog = &fav
	}
	if mb, ok := MostBlogs(blogs); ok {
		s.MostBlogs = &mb
	}
	if ml, ok := MostLikes(blogs); ok {
		s.MostLikes = &ml
	}
	return s
}

// authorTally accumulates a per-author value, remembering authors in
// first-appearance order.
type authorTally struct {
	order  []string
	values map[string]int
}

func tallyBy(blogs []Blog, weight func(Blog) int) authorTally {
	t := authorTally{values: make(map[string]int)}
	for _, b := range blogs {
		if _, seen := t.values[b.Author]; !seen {
			t.order = append(t.order, b.Author)
		}
		t.values[b.Author] += weight(b)
	}
	return t
}

func (t authorTally) top() (string, int) {
	best := t.order[0]
	for _, author := range t.order[1:] {
		if t.values[author] > t.values[best] {
			best = author
		}
	}
	return best, t.values[best]
}
