package apimodels

type ErrorResponse struct {
	Success bool   `json:"success"`         //always false for error responses
	Message string `json:"message"`         //human readable explanation
	Error   string `json:"error,omitempty"` //underlying error text
}

func NewError(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
