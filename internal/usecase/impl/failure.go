// Package impl contains the implementation of the application's business logic.
package impl

import (
	"log/slog"
	"strings"

	domainerrors "gatehouse/internal/domain/errors"

	"github.com/pkg/errors"
)

// internalFailure logs an unexpected collaborator error with full detail and hides it
// behind ErrInternal. Only the wrapped message keeps the cause, for server-side logs.
func internalFailure(logger *slog.Logger, flow, op string, err error) error {
	logger.Error("Unexpected failure",
		slog.String("flow", flow),
		slog.String("op", op),
		slog.Any("error", err),
	)

	return errors.Wrapf(domainerrors.ErrInternal, "%s: %v", op, err)
}

// outcome labels a flow step for metrics, e.g. "begin_ok" or "verify_stage_not_found".
func outcome(step string, err error) string {
	if err == nil {
		return step + "_ok"
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return step + "_" + strings.ToLower(appErr.ErrorCode())
	}

	return step + "_error"
}
