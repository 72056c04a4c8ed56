package domain

import "errors"

// ErrTemplateNotFound is returned when no template is registered for a
// (kind, variant) pair. Callers drop the block and keep rendering.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateRepository supplies raw template HTML by (kind, variant) key. The
// content is opaque to callers; loading is the engine's one synchronous
// external dependency and may fail.
type TemplateRepository interface {
	LoadTemplate(kind BlockKind, variant string) (string, error)
}
