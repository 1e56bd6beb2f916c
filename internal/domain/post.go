package domain

import "time"

// PostCategory разделяет обычные записи блога и анонсы событий
type PostCategory string

const (
	CategoryPost  PostCategory = "post"
	CategoryEvent PostCategory = "event"
)

// IsValid returns true for a known post category
func (c PostCategory) IsValid() bool {
	return c == CategoryPost || c == CategoryEvent
}

// PostStatus represents the publication status of a post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// IsValid returns true for a known post status
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	default:
		return false
	}
}

// Post represents a blog post or an event announcement
type Post struct {
	ID              int64
	Title           string
	Slug            string
	Excerpt         *string
	Content         string
	FeaturedImage   *string
	GalleryImages   []string
	Category        PostCategory
	Status          PostStatus
	AuthorName      string
	Tags            []string
	EventDate       *time.Time
	EventLocation   *string
	MetaDescription *string
	ViewsCount      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPublished returns true if the post is visible on the public site
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsEvent returns true for event announcements
func (p *Post) IsEvent() bool {
	return p.Category == CategoryEvent
}

// PostsFilter фильтр для получения списка записей
type PostsFilter struct {
	Category *PostCategory // Фильтр по категории (опционально)
	Status   *PostStatus   // Фильтр по статусу (опционально)
	Tag      *string       // Фильтр по тегу (опционально)
}
