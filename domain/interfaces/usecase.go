package interfaces

import (
	"context"

	"poncoocr/domain/entities"
)

// InspectPathsUseCase checks the configured dataset and model locations.
type InspectPathsUseCase interface {
	// Execute inspects every target and returns one entry per target, in order.
	Execute(ctx context.Context, targets []entities.PathTarget) (*entities.PathReport, error)
}
