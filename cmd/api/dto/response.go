package dto

// ErrorResponseDTO는 공통 에러 응답 형식이다.
type ErrorResponseDTO struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Feed item not found"`
}

// MessageResponseDTO는 단순 메시지 응답 형식이다.
type MessageResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"feed cache cleared"`
}

func NewError(msg string) ErrorResponseDTO {
	return ErrorResponseDTO{Success: false, Error: msg}
}
