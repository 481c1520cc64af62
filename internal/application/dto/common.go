package dto

// Límites de página del catálogo.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest ventana limit/offset sobre el resultado ya filtrado y ordenado.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// Normalize limit 0 = DefaultLimit; offset negativo = 0.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de la ventana devuelta; Total cuenta antes de paginar.
type PageResponse struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	NextOffset int  `json:"next_offset,omitempty"`
}

// NewPageResponse calcula si quedan productos tras la ventana actual.
func NewPageResponse(limit, offset, total int) PageResponse {
	p := PageResponse{Limit: limit, Offset: offset, Total: total}
	if next := offset + limit; next < total {
		p.HasMore = true
		p.NextOffset = next
	}
	return p
}

// ErrorResponse cuerpo de error HTTP; Code es estable (NOT_FOUND, VALIDATION, ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
