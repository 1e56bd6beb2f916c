package handlers

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// HallView представление зала в ответах API
type HallView struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	CourtsCount         int               `json:"courts_count"`
	PricePerHour        float64           `json:"price_per_hour"`
	Description         string            `json:"description"`
	DetailedDescription *string           `json:"detailed_description,omitempty"`
	Features            []string          `json:"features"`
	Amenities           []string          `json:"amenities"`
	Specifications      map[string]string `json:"specifications"`
	WorkingHours        map[string]string `json:"working_hours"`
	Images              []string          `json:"images"`
	IsActive            bool              `json:"is_active"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// NewHallView собирает представление зала
func NewHallView(hall *domain.Hall) HallView {
	return HallView{
		ID:                  hall.ID,
		Name:                hall.Name,
		CourtsCount:         hall.CourtsCount,
		PricePerHour:        hall.PricePerHour,
		Description:         hall.Description,
		DetailedDescription: hall.DetailedDescription,
		Features:            emptyIfNil(hall.Features),
		Amenities:           emptyIfNil(hall.Amenities),
		Specifications:      emptyMapIfNil(hall.Specifications),
		WorkingHours:        emptyMapIfNil(hall.WorkingHours),
		Images:              emptyIfNil(hall.Images),
		IsActive:            hall.IsActive,
		CreatedAt:           hall.CreatedAt,
		UpdatedAt:           hall.UpdatedAt,
	}
}

// NewHallViews собирает представления списка залов
func NewHallViews(halls []*domain.Hall) []HallView {
	views := make([]HallView, 0, len(halls))
	for _, h := range halls {
		views = append(views, NewHallView(h))
	}
	return views
}

// ReservationView представление бронирования в ответах API
type ReservationView struct {
	ID              int64      `json:"id"`
	HallID          int64      `json:"hall_id"`
	HallName        string     `json:"hall_name"`
	CourtNumber     int        `json:"court_number"`
	BookingDate     string     `json:"booking_date"`
	StartTime       string     `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   *string    `json:"customer_email,omitempty"`
	TotalPrice      float64    `json:"total_price"`
	Notes           *string    `json:"notes,omitempty"`
	CancelReason    *string    `json:"cancellation_reason,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewReservationView собирает представление бронирования
func NewReservationView(res *domain.Reservation) ReservationView {
	return ReservationView{
		ID:              res.ID,
		HallID:          res.HallID,
		HallName:        res.HallName,
		CourtNumber:     res.CourtNumber,
		BookingDate:     res.BookingDate.Format(domain.DateFormat),
		StartTime:       string(res.StartTime),
		DurationMinutes: res.DurationMinutes,
		Status:          string(res.Status),
		CustomerName:    res.CustomerName,
		CustomerPhone:   res.CustomerPhone,
		CustomerEmail:   res.CustomerEmail,
		TotalPrice:      res.TotalPrice,
		Notes:           res.Notes,
		CancelReason:    res.CancellationReason,
		CancelledAt:     res.CancelledAt,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
}

// NewReservationViews собирает представления списка бронирований
func NewReservationViews(list []*domain.Reservation) []ReservationView {
	views := make([]ReservationView, 0, len(list))
	for _, r := range list {
		views = append(views, NewReservationView(r))
	}
	return views
}

// PostView представление записи блога в ответах API
type PostView struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	FeaturedImage   *string    `json:"featured_image,omitempty"`
	GalleryImages   []string   `json:"gallery_images"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	AuthorName      string     `json:"author_name"`
	Tags            []string   `json:"tags"`
	EventDate       *time.Time `json:"event_date,omitempty"`
	EventLocation   *string    `json:"event_location,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	ViewsCount      int64      `json:"views_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewPostView собирает представление записи
func NewPostView(post *domain.Post) PostView {
	return PostView{
		ID:              post.ID,
		Title:           post.Title,
		Slug:            post.Slug,
		Excerpt:         post.Excerpt,
		Content:         post.Content,
		FeaturedImage:   post.FeaturedImage,
		GalleryImages:   emptyIfNil(post.GalleryImages),
		Category:        string(post.Category),
		Status:          string(post.Status),
		AuthorName:      post.AuthorName,
		Tags:            emptyIfNil(post.Tags),
		EventDate:       post.EventDate,
		EventLocation:   post.EventLocation,
		MetaDescription: post.MetaDescription,
		ViewsCount:      post.ViewsCount,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
	}
}

// NewPostViews собирает представления списка записей
func NewPostViews(list []*domain.Post) []PostView {
	views := make([]PostView, 0, len(list))
	for _, p := range list {
		views = append(views, NewPostView(p))
	}
	return views
}

// emptyIfNil заменяет nil-слайс пустым, чтобы в JSON был [], а не null
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// emptyMapIfNil заменяет nil-мапу пустой, чтобы в JSON был {}, а не null
func emptyMapIfNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
