// Package usecases contains the application use cases driven by the poncoocr CLI.
package usecases

import (
	"context"
	"fmt"
	"os"

	"poncoocr/domain/entities"
	"poncoocr/domain/errors"
	"poncoocr/domain/interfaces"
)

// inspectPathsUseCase implements the InspectPathsUseCase interface.
type inspectPathsUseCase struct {
	logger interfaces.Logger
}

// NewInspectPathsUseCase creates a new inspect paths use case.
func NewInspectPathsUseCase(logger interfaces.Logger) interfaces.InspectPathsUseCase {
	return &inspectPathsUseCase{
		logger: logger,
	}
}

// Execute stats every target. It never creates or modifies anything.
func (uc *inspectPathsUseCase) Execute(ctx context.Context, targets []entities.PathTarget) (*entities.PathReport, error) {
	if len(targets) == 0 {
		return nil, errors.NewDomainError(errors.ErrInvalidInput, "no paths to inspect")
	}

	report := &entities.PathReport{
		Paths: make([]entities.PathStatus, 0, len(targets)),
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status := inspect(target)
		if status.Valid {
			uc.logger.Debug("Path ok", "option", status.Option, "path", status.Path)
		} else {
			uc.logger.Warn("Path invalid",
				"option", status.Option,
				"path", status.Path,
				"reason", status.Reason)
		}
		report.Paths = append(report.Paths, status)
	}

	uc.logger.Info("Paths inspected",
		"total", len(report.Paths),
		"invalid", len(report.Invalid()))

	return report, nil
}

func inspect(target entities.PathTarget) entities.PathStatus {
	status := entities.PathStatus{
		Option:   target.Option,
		Path:     target.Path,
		Expected: target.Expected,
	}

	if target.Path == "" {
		status.Reason = "path is empty"
		return status
	}

	info, err := os.Stat(target.Path)
	if err != nil {
		if os.IsNotExist(err) {
			status.Reason = "does not exist"
		} else {
			status.Reason = err.Error()
		}
		return status
	}
	status.Exists = true

	switch target.Expected {
	case entities.PathKindDir:
		if !info.IsDir() {
			status.Reason = "expected a directory"
			return status
		}
	case entities.PathKindFile:
		if !info.Mode().IsRegular() {
			status.Reason = "expected a regular file"
			return status
		}
	default:
		status.Reason = fmt.Sprintf("unknown expected kind %q", target.Expected)
		return status
	}

	status.Valid = true
	return status
}
