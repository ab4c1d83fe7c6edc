package dto

// PhaseResult resultado de una fase del seed (una tabla).
type PhaseResult struct {
	Table     string
	Attempted int
	Inserted  int64
}

// Skipped filas omitidas por conflicto de clave.
func (p PhaseResult) Skipped() int64 {
	return int64(p.Attempted) - p.Inserted
}

// SeedResult resumen de una ejecución completa, en orden de fases.
type SeedResult struct {
	Phases []PhaseResult
}

// Phase busca el resultado de la tabla indicada.
func (r SeedResult) Phase(table string) (PhaseResult, bool) {
	for _, p := range r.Phases {
		if p.Table == table {
			return p, true
		}
	}
	return PhaseResult{}, false
}

// MessageResponse cuerpo HTTP de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}
