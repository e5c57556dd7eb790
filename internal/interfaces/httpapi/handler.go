package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/predictpool/backend/internal/platform/logging"
	"github.com/predictpool/backend/internal/usecase"
)

type Handler struct {
	queryService      *usecase.QueryService
	bulkService       *usecase.BulkResultService
	simulationService *usecase.SimulationService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	queryService *usecase.QueryService,
	bulkService *usecase.BulkResultService,
	simulationService *usecase.SimulationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queryService:      queryService,
		bulkService:       bulkService,
		simulationService: simulationService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
