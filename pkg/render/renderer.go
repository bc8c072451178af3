package render

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Renderer converts a FormModel into a byte representation (an HTML page, a
// terminal session transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
