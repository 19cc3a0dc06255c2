package input

import (
	"context"

	"renderkit/internal/domain/entities"
	"renderkit/internal/ports/output"
)

type RenderUseCase interface {
	Render(ctx context.Context, store output.ValueStore, req entities.RenderRequest) (entities.Value, error)
	Renderers() []string
}
