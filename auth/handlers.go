package auth

import (
	"encoding/json"
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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Name == "" || !utils.ValidEmail(in.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Ad və düzgün e-poçt tələb olunur")
		return
	}

	sess, err := h.svc.Register(in)
	switch {
	case errors.Is(err, ErrWeakSecret):
		utils.RespondWithError(w, http.StatusBadRequest, "Şifrə ən azı 6 simvol olmalıdır")
		return
	case errors.Is(err, ErrEmailTaken):
		utils.RespondWithError(w, http.StatusConflict, "Bu e-poçt artıq qeydiyyatdan keçib")
		return
	case err != nil:
		log.Printf("register failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := Token(sess.UserID, sess.Name, "user")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	utils.SendResponse(w, http.StatusCreated, utils.M{"token": token, "user": sess}, "Registered", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sess, err := h.svc.Login(in.Email, in.Password)
	if errors.Is(err, ErrAuthFailed) {
		utils.RespondWithError(w, http.StatusUnauthorized, "E-poçt və ya şifrə yanlışdır")
		return
	}
	if err != nil {
		log.Printf("login failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := Token(sess.UserID, sess.Name, "user")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, utils.M{"token": token, "user": sess}, "Logged in", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.svc.Logout(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out"})
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess, err := h.svc.st.Session()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Session lookup failed")
		return
	}
	if sess == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": nil})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": sess})
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sess, err := h.svc.AdminLogin(in.Username, in.Password)
	if errors.Is(err, ErrAuthFailed) {
		utils.RespondWithError(w, http.StatusUnauthorized, "İstifadəçi adı və ya şifrə yanlışdır")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := Token(sess.ID, sess.Username, "admin")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, utils.M{"token": token, "admin": sess}, "Logged in", nil)
}

func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.svc.AdminLogout(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out"})
}
