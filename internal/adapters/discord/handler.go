package discord

import (
	"log/slog"

	"renderkit/internal/logging"
	"renderkit/internal/ports/input"
	"renderkit/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	renderUseCase input.RenderUseCase
	translator    output.T
	logger        *slog.Logger
	zone          string
}

// NewHandler creates a Handler. zone is the time zone of the renders, empty
// for the default of the use case.
func NewHandler(
	renderUseCase input.RenderUseCase,
	translator output.T,
	logger *slog.Logger,
	zone string,
) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{
		renderUseCase: renderUseCase,
		translator:    translator,
		logger:        logger,
		zone:          zone,
	}
}
