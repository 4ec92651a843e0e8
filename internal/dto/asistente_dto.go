package dto

type ChatRequest struct {
	Mensaje  string  `json:"mensaje"  validate:"required,max=2000"`
	Contexto *string `json:"contexto" validate:"omitempty,max=4000"`
}

type SugerirComboRequest struct {
	Descripcion string `json:"descripcion" validate:"required,max=1000"`
}

// AsistenteResponse never carries an HTTP error: upstream failures set
// Exito=false and a fallback Respuesta.
type AsistenteResponse struct {
	Respuesta string  `json:"respuesta"`
	Exito     bool    `json:"exito"`
	Error     *string `json:"error,omitempty"`
}
