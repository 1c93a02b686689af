package favorites

import (
	"fmt"
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

// GetFavorites lists the favourites. GET /api/favorites?sort=
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	books, err := h.svc.List(r.URL.Query().Get("sort"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Favorites lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"favorites": books, "count": len(books)})
}

// ToggleFavorite flips a book. POST /api/favorites/toggle/:id
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	added, err := h.svc.Toggle(bookID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Favorites update failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"added": added})
}

// RemoveFavorite drops a book. DELETE /api/favorites/:id
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	if err := h.svc.Remove(bookID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Favorites update failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Removed"})
}

// ClearFavorites empties the list. DELETE /api/favorites
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.svc.Clear(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Favorites update failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Cleared"})
}

// AddAllToCart moves every in-stock favourite into the cart.
// POST /api/favorites/cart
func (h *Handler) AddAllToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	added, skipped, err := h.svc.AddAllToCart()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Cart update failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"added": added, "skipped": skipped})
}

// ExportFavorites downloads the favourites as a JSON attachment.
// GET /api/favorites/export
func (h *Handler) ExportFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	books, err := h.svc.List(SortDateAdded)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Favorites lookup failed")
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "favorites.json"))
	utils.RespondWithJSON(w, http.StatusOK, books)
}
