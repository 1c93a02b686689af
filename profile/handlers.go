package profile

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kitabdunyasi/models"
	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetProfile returns the logged-in account. GET /api/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := h.svc.Get(utils.GetUserIDFromRequest(r))
	if errors.Is(err, ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Profile lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Public())
}

// UpdateProfile edits the account fields. PUT /api/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	user, err := h.svc.Update(utils.GetUserIDFromRequest(r), in)
	if errors.Is(err, ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	}
	if err != nil {
		log.Printf("profile update failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Profile update failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, user.Public(), "Profile updated", nil)
}

// ChangePassword swaps the account password. PUT /api/profile/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in struct {
		Current string `json:"currentPassword"`
		Next    string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.svc.ChangePassword(utils.GetUserIDFromRequest(r), in.Current, in.Next)
	switch {
	case errors.Is(err, ErrWrongPassword):
		utils.RespondWithError(w, http.StatusUnauthorized, "Cari şifrə yanlışdır")
		return
	case errors.Is(err, ErrWeakSecret):
		utils.RespondWithError(w, http.StatusBadRequest, "Şifrə ən azı 6 simvol olmalıdır")
		return
	case errors.Is(err, ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Password change failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Şifrə yeniləndi"})
}

// UpdateSettings saves the notification toggles. PUT /api/profile/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var settings models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.svc.UpdateSettings(utils.GetUserIDFromRequest(r), settings); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Settings update failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Parametrlər yadda saxlanıldı"})
}

// GetOrders lists the account's orders. GET /api/profile/orders
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := h.svc.Orders(utils.GetUserIDFromRequest(r))
	if errors.Is(err, ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Orders lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": orders})
}

// GetStats summarises the account. GET /api/profile/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.svc.Stats(utils.GetUserIDFromRequest(r))
	if errors.Is(err, ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Stats lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// DeleteAccount removes the account. DELETE /api/profile
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	err := h.svc.DeleteAccount(utils.GetUserIDFromRequest(r))
	if errors.Is(err, ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
		return
	}
	if err != nil {
		log.Printf("account delete failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Account delete failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Hesab silindi"})
}
