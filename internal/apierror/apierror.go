// Package apierror holds the JSON bodies the API answers with on 4xx/5xx.
// Internal details (driver errors, panics) never reach these bodies.
package apierror

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MsgInterno is the only text a client sees for an unexpected failure.
const MsgInterno = "Error interno del servidor"

type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func Interno() *APIError {
	return New(MsgInterno)
}

// ValidationError lists each failing request field with the rule it broke.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

// FromValidator keys fields by their path below the request root, e.g.
// "items[0].cantidad". Field names are whatever the validator reports, so
// register a json tag name func to get wire names.
func FromValidator(errs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		campo := fe.Namespace()
		if i := strings.IndexByte(campo, '.'); i >= 0 {
			campo = campo[i+1:]
		}
		fields[campo] = describir(fe)
	}
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

func describir(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return "debe ser al menos " + fe.Param()
	case "max":
		return "no puede exceder " + fe.Param()
	case "gt":
		return "debe ser mayor a " + fe.Param()
	case "uuid":
		return "debe ser un UUID válido"
	case "url":
		return "debe ser una URL válida"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	}
	return "no cumple la regla " + fe.Tag()
}
