package dto

// APIResponse envoltura uniforme de todas las respuestas HTTP:
// {status, message, data?, errors?}.
type APIResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError violación de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrorsFrom convierte el mapa campo → mensaje en la lista ordenable
// que viaja en el envelope.
func FieldErrorsFrom(fields map[string]string) []FieldError {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
