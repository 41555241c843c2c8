package dto

type PostChatMessageRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=100"`
	Message  string `json:"message"   validate:"required,min=1"`
}

type ChatMessageResponse struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Message     string `json:"message"`
	IsForwarded bool   `json:"is_forwarded"`
	Timestamp   string `json:"timestamp"`
}

type PostChatMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
