package cart

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kitabdunyasi/bonus"
	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc   *Service
	bonus *bonus.Service
}

func NewHandler(svc *Service, bonusSvc *bonus.Service) *Handler {
	return &Handler{svc: svc, bonus: bonusSvc}
}

// GetCart handles GET /api/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.svc.Items()
	if err != nil {
		log.Println("GetCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// AddToCart handles POST /api/cart/:id
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	switch err := h.svc.Add(bookID); {
	case errors.Is(err, ErrBookNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, ErrOutOfStock):
		utils.RespondWithError(w, http.StatusConflict, "Bu kitab stokda yoxdur")
	case errors.Is(err, ErrStockLimit):
		utils.RespondWithError(w, http.StatusConflict, "Stok limiti")
	case err != nil:
		log.Println("AddToCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
	default:
		utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "added"})
	}
}

// UpdateQuantity handles PUT /api/cart/:id
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	qty, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	switch err := h.svc.SetQuantity(bookID, qty); {
	case errors.Is(err, ErrBookNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
	case err != nil:
		log.Println("UpdateQuantity error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart")
	default:
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// RemoveFromCart handles DELETE /api/cart/:id
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	if err := h.svc.Remove(bookID); err != nil {
		log.Println("RemoveFromCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove item")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearCart handles DELETE /api/cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.svc.Clear(); err != nil {
		log.Println("ClearCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// GetSummary handles GET /api/cart/summary?redeem=N
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	redeem, _ := strconv.Atoi(r.URL.Query().Get("redeem"))

	balance := 0
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		b, err := h.bonus.Balance(userID)
		if err == nil {
			balance = b
		}
	}

	sum, err := h.svc.Summary(redeem, balance)
	if err != nil {
		log.Println("GetSummary error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not compute summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sum)
}
