package bonus

import (
	"errors"
	"log"
	"net/http"

	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetBalance handles GET /api/bonus
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.svc.Balance(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("GetBalance error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not read balance")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"balance":        balance,
		"conversionRate": ConversionRate,
		"minRedemption":  MinRedemption,
	})
}

// GetHistory handles GET /api/bonus/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	history, err := h.svc.History(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("GetHistory error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not read bonus history")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, history)
}
