package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/predictpool/backend/internal/usecase"
)

type bulkResultRequest struct {
	GroupID        string `json:"group_id" validate:"required_without=PlayoffRoundID,excluded_with=PlayoffRoundID"`
	PlayoffRoundID string `json:"playoff_round_id" validate:"required_without=GroupID,excluded_with=GroupID"`
}

func (h *Handler) decodeBulkScope(r *http.Request) (usecase.Scope, error) {
	var req bulkResultRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return usecase.Scope{}, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return usecase.Scope{}, err
	}

	if req.GroupID != "" {
		return usecase.GroupScope(req.GroupID), nil
	}
	return usecase.PlayoffScope(req.PlayoffRoundID), nil
}

// AutoFillResults publishes generated scores for every unscored game in the
// requested scope, then triggers a full recomputation.
func (h *Handler) AutoFillResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoFillResults")
	defer span.End()

	scope, err := h.decodeBulkScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome := h.bulkService.AutoFill(ctx, scope)
	if !outcome.Success {
		h.logger.WarnContext(ctx, "autofill rejected", "error", outcome.Error)
	}
	writeSuccess(ctx, w, statusForBulkError(outcome.Success, outcome.Error), outcome)
}

// ClearResults resets every recorded result in the requested scope back to a
// score-less draft, then triggers a full recomputation.
func (h *Handler) ClearResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearResults")
	defer span.End()

	scope, err := h.decodeBulkScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome := h.bulkService.ClearGameScores(ctx, scope)
	if !outcome.Success {
		h.logger.WarnContext(ctx, "clear rejected", "error", outcome.Error)
	}
	writeSuccess(ctx, w, statusForBulkError(outcome.Success, outcome.Error), outcome)
}

// statusForBulkError keeps the outcome record as the response body while the
// HTTP status reflects the stable error codes.
func statusForBulkError(success bool, code string) int {
	if success {
		return http.StatusOK
	}
	switch code {
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	case usecase.CodeRequireGroupOrPlayoff:
		return http.StatusBadRequest
	case usecase.CodeGroupNotFound, usecase.CodePlayoffRoundNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
