package calibration

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	dto "dice_backend/internal/api/dto/calibration"
	"dice_backend/internal/converter"
	"dice_backend/internal/dice"
	"dice_backend/internal/model"
	"dice_backend/internal/rtp"
	"dice_backend/internal/service"
	"dice_backend/pkg/req"
	"dice_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RTPService
}

type Handler struct {
	serv service.RTPService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Simulate runs a calibration simulation. A client disconnect cancels the run;
// its partial report is stored but not sent.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SimulateRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	report, err := h.serv.Simulate(r.Context(), converter.ToSimulationRequest(payload))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownPreset),
			errors.Is(err, model.ErrTrialLimitExceeded),
			errors.Is(err, dice.ErrInvalidOddsTable),
			errors.Is(err, rtp.ErrInvalidTrialCount),
			errors.Is(err, rtp.ErrInvalidStake):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			http.Error(w, "simulation cancelled", http.StatusServiceUnavailable)
		default:
			log.Println("Simulate error:", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportResponse(*report))
}

// Reports lists stored reports, ?limit=N
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}

	reports, err := h.serv.Reports(r.Context(), limit)
	if err != nil {
		log.Println("Reports error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportsResponse(reports))
}
