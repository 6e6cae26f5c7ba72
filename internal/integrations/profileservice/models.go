package profileservice

// Professional модель специалиста (ветеринара) из ProfileService
type Professional struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"` // tutor | veterinary | admin
	IsActive    bool   `json:"is_active"`
}

// Service модель услуги специалиста из ProfileService
type Service struct {
	ID              int64    `json:"id"`
	ProfessionalID  int64    `json:"professional_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
}

// Pet модель питомца из ProfileService
type Pet struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}
