package game

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	dto "dice_backend/internal/api/dto/game"
	"dice_backend/internal/converter"
	"dice_backend/internal/model"
	"dice_backend/internal/service"
	"dice_backend/pkg/req"
	"dice_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Init credits the starting balance on first call
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Init(r.Context())
	if err != nil {
		writeError(w, "Init", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		writeError(w, "Balance", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

// Roll plays one round for the bet in the body
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RollRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Roll(r.Context(), converter.ToRollRequest(payload))
	if err != nil {
		writeError(w, "Roll", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRollResponse(*result))
}

// History lists ledger entries, ?limit=N
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}

	rows, err := h.serv.History(r.Context(), limit)
	if err != nil {
		writeError(w, "History", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(rows))
}

func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOddsResponse(h.serv.Odds()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrBetNotPositive):
		http.Error(w, "Bet must be positive", http.StatusBadRequest)
	case errors.Is(err, model.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusBadRequest)
	case errors.Is(err, model.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		log.Printf("%s error: %v", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
