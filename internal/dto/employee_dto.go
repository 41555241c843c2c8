package dto

type CreateEmployeeRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Position string `json:"position" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Position *string `json:"position"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
