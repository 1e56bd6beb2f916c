package create_hall

import "github.com/m04kA/BMC-HallBookingService/internal/domain"

// request тело запроса создания зала
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
	IsActive            *bool             `json:"is_active"`
}

// toDomain собирает доменную модель зала
// Новый зал по умолчанию активен
func (req *request) toDomain() *domain.Hall {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &domain.Hall{
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
		IsActive:            isActive,
	}
}
