package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

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

// GetStats serves the dashboard. GET /api/admin/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.svc.Stats()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Stats lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// CreateBook adds a catalog entry. POST /api/admin/books
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	created, err := h.svc.CreateBook(book)
	if errors.Is(err, ErrBadBook) {
		utils.RespondWithError(w, http.StatusBadRequest, "Kitab məlumatları tam deyil")
		return
	}
	if err != nil {
		log.Printf("create book failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Create failed")
		return
	}
	utils.SendResponse(w, http.StatusCreated, created, "Book created", nil)
}

// UpdateBook replaces a catalog entry. PUT /api/admin/books/:id
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	updated, err := h.svc.UpdateBook(id, book)
	switch {
	case errors.Is(err, ErrBadBook):
		utils.RespondWithError(w, http.StatusBadRequest, "Kitab məlumatları tam deyil")
		return
	case errors.Is(err, ErrBookNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Kitab tapılmadı")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Update failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Book updated", nil)
}

// DeleteBook drops a catalog entry. DELETE /api/admin/books/:id
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	if err := h.svc.DeleteBook(id); err != nil {
		if errors.Is(err, ErrBookNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Kitab tapılmadı")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Book deleted"})
}

// GetOrders serves the orders table. GET /api/admin/orders
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := h.svc.Orders()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Orders lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": orders})
}

// UpdateOrderStatus moves an order. PUT /api/admin/orders/:id/status
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	order, err := h.svc.UpdateOrderStatus(ps.ByName("id"), in.Status)
	switch {
	case errors.Is(err, ErrBadStatus):
		utils.RespondWithError(w, http.StatusBadRequest, "Status düzgün deyil")
		return
	case errors.Is(err, ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Sifariş tapılmadı")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Update failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, order, "Order updated", nil)
}

// DeleteOrder drops an order from the global ledger.
// DELETE /api/admin/orders/:id
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.svc.DeleteOrder(ps.ByName("id")); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Sifariş tapılmadı")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order deleted"})
}

// GetUsers serves the users table. GET /api/admin/users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.svc.Users()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Users lookup failed")
		return
	}
	public := make([]models.User, len(users))
	for i, u := range users {
		public[i] = u.Public()
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"users": public})
}

// DeleteUser removes an account. DELETE /api/admin/users/:id
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.svc.DeleteUser(ps.ByName("id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "İstifadəçi tapılmadı")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User deleted"})
}

// GetTopSelling ranks books by settled quantity.
// GET /api/admin/analytics/top?limit=N
func (h *Handler) GetTopSelling(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ranked, err := h.svc.TopSelling(limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Analytics lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"topSelling": ranked})
}
