package create_post

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// request тело запроса создания записи
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
// Пустые категория и статус получают значения по умолчанию
func (req *request) toDomain() *domain.Post {
	category := domain.PostCategory(req.Category)
	if req.Category == "" {
		category = domain.CategoryPost
	}

	status := domain.PostStatus(req.Status)
	if req.Status == "" {
		status = domain.PostStatusDraft
	}

	return &domain.Post{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		GalleryImages:   req.GalleryImages,
		Category:        category,
		Status:          status,
		AuthorName:      req.AuthorName,
		Tags:            req.Tags,
		EventDate:       req.EventDate,
		EventLocation:   req.EventLocation,
		MetaDescription: req.MetaDescription,
	}
}
