package pdf

import "devis-backend/render"

// Generator turns a composed visual tree into a downloadable PDF document.
type Generator interface {
	Generate(doc render.Document) ([]byte, error)
}
