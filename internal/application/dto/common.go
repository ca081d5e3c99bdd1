package dto

// ErrorResponse cuerpo de error HTTP. Success siempre false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// DataResponse envoltura uniforme {success, message?, data} para respuestas con un solo recurso.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ListResponse envoltura para listados, incluye el conteo como el cliente espera.
type ListResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

// OK construye una DataResponse exitosa.
func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// OKMessage construye una DataResponse exitosa con mensaje.
func OKMessage(message string, data any) DataResponse {
	return DataResponse{Success: true, Message: message, Data: data}
}

// OKList construye una ListResponse exitosa.
func OKList(data any, count int) ListResponse {
	return ListResponse{Success: true, Data: data, Count: count}
}
