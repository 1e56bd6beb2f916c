package update_post

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// request тело запроса обновления записи
type request struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   *string    `json:"featured_image"`
	GalleryImages   []string   `json:"gallery_images"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	AuthorName      string     `json:"author_name"`
	Tags            []string   `json:"tags"`
	EventDate       *time.Time `json:"event_date"`
	EventLocation   *string    `json:"event_location"`
	MetaDescription *string    `json:"meta_description"`
}

// toDomain собирает доменную модель записи
func (req *request) toDomain(id int64) *domain.Post {
	return &domain.Post{
		ID:              id,
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		GalleryImages:   req.GalleryImages,
		Category:        domain.PostCategory(req.Category),
		Status:          domain.PostStatus(req.Status),
		AuthorName:      req.AuthorName,
		Tags:            req.Tags,
		EventDate:       req.EventDate,
		EventLocation:   req.EventLocation,
		MetaDescription: req.MetaDescription,
	}
}
