package checkout

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// BeginCheckout freezes the cart into a draft for the logged-in buyer.
// POST /api/checkout?redeem=N
func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	redeem, _ := strconv.Atoi(r.URL.Query().Get("redeem"))

	draft, err := h.svc.Begin(userID, redeem)
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Davam etmək üçün daxil olun")
		return
	case errors.Is(err, ErrEmptyCart):
		utils.RespondWithError(w, http.StatusBadRequest, "Səbət boşdur")
		return
	case err != nil:
		log.Printf("begin checkout failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Checkout failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, utils.M{"state": StateValidating, "draft": draft}, "Checkout started", nil)
}

// GetDraft returns the active draft. GET /api/checkout
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	draft, err := h.svc.Draft(userID)
	if errors.Is(err, ErrNoDraft) {
		utils.RespondWithError(w, http.StatusNotFound, "Aktiv sifariş yoxdur")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Checkout lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"state": StateValidating, "draft": draft})
}

// CancelCheckout drops the draft. DELETE /api/checkout
func (h *Handler) CancelCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if err := h.svc.Cancel(userID); err != nil {
		if errors.Is(err, ErrNoDraft) {
			utils.RespondWithError(w, http.StatusNotFound, "Aktiv sifariş yoxdur")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Cancel failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"state": StateDrafting, "message": "Checkout cancelled"})
}

// ConfirmCheckout validates the billing form and settles the order.
// POST /api/checkout/confirm
func (h *Handler) ConfirmCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var in ConfirmInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := h.svc.Confirm(r.Context(), userID, in)
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"state":   StateValidating,
			"field":   vErr.Field,
			"message": vErr.Message,
		})
		return
	case errors.Is(err, ErrNoDraft):
		utils.RespondWithError(w, http.StatusNotFound, "Aktiv sifariş yoxdur")
		return
	case errors.Is(err, ErrStockShortfall):
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"state":   StateRejected,
			"message": "Bəzi kitablar artıq stokda yoxdur",
		})
		return
	case errors.Is(err, ErrCommitFailure):
		log.Printf("settlement commit interrupted: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Settlement interrupted")
		return
	case err != nil:
		log.Printf("confirm checkout failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Checkout failed")
		return
	}

	utils.SendResponse(w, http.StatusCreated, utils.M{"state": StateSucceeded, "order": order}, "Order placed", nil)
}
