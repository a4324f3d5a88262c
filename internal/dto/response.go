package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(details string) ErrorResponse {
	return ErrorResponse{
		Error: details,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessage(message string) MessageResponse {
	return MessageResponse{
		Message: message,
	}
}
