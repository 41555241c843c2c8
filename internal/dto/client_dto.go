package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateClientRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=100"`
	Email         string  `json:"email"          validate:"omitempty,email"`
	Phone         string  `json:"phone"          validate:"required"`
	Stage         string  `json:"stage"          validate:"required"`
	Payment       string  `json:"payment"`
	Price         string  `json:"price"`
	SportCategory *string `json:"sport_category"`
	Trainer       *string `json:"trainer"`
	Year          *string `json:"year"`
	Month         *string `json:"month"`
	Day           *string `json:"day"`
	Comment       string  `json:"comment"`
}

type UpdateClientRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Stage         *string `json:"stage"`
	Payment       *string `json:"payment"`
	Price         *string `json:"price"`
	SportCategory *string `json:"sport_category"`
	Trainer       *string `json:"trainer"`
	Year          *string `json:"year"`
	Month         *string `json:"month"`
	Day           *string `json:"day"`
	Comment       *string `json:"comment"`
}

type ClientFilter struct {
	Name  string `form:"name"`
	Stage string `form:"stage"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Stage         string  `json:"stage"`
	Payment       string  `json:"payment"`
	Price         string  `json:"price"`
	SportCategory *string `json:"sport_category"`
	Trainer       *string `json:"trainer"`
	Year          *string `json:"year"`
	Month         *string `json:"month"`
	Day           *string `json:"day"`
	Comment       string  `json:"comment"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ClientListResponse struct {
	Data  []ClientResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type CleanupClientsResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

type ImportClientsResponse struct {
	Imported int `json:"imported"`
}
