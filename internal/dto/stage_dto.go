package dto

type CreateStageRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	// ClientIDs links existing clients to the stage on creation
	ClientIDs []string `json:"client_ids" validate:"omitempty,dive,uuid"`
}

type UpdateStageRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	ClientIDs   []string `json:"client_ids" validate:"omitempty,dive,uuid"`
}

// StageResponse embeds the stage's clients, mirroring the nested read
// contract of the pipeline API.
type StageResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Clients     []ClientResponse `json:"clients"`
}
