package serverutils

// BaseResponse is the uniform envelope for every JSON reply.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// ValidationErrorResponse carries the per-field failure map in the data slot.
func ValidationErrorResponse(fields map[string]string) BaseResponse[map[string]string] {
	return BaseResponse[map[string]string]{
		Success: false,
		Message: "validation failed",
		Data:    fields,
		Code:    422,
	}
}
