package update_hall

import "github.com/m04kA/BMC-HallBookingService/internal/domain"

// request тело запроса обновления зала
type request struct {
	Name                string            `json:"name"`
	CourtsCount         int               `json:"courts_count"`
	PricePerHour        float64           `json:"price_per_hour"`
	Description         string            `json:"description"`
	DetailedDescription *string           `json:"detailed_description"`
	Features            []string          `json:"features"`
	Amenities           []string          `json:"amenities"`
	Specifications      map[string]string `json:"specifications"`
	WorkingHours        map[string]string `json:"working_hours"`
	Images              []string          `json:"images"`
	IsActive            bool              `json:"is_active"`
}

// toDomain собирает доменную модель зала
func (req *request) toDomain(id int64) *domain.Hall {
	return &domain.Hall{
		ID:                  id,
		Name:                req.Name,
		CourtsCount:         req.CourtsCount,
		PricePerHour:        req.PricePerHour,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Features:            req.Features,
		Amenities:           req.Amenities,
		Specifications:      req.Specifications,
		WorkingHours:        req.WorkingHours,
		Images:              req.Images,
		IsActive:            req.IsActive,
	}
}
