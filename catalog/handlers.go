package catalog

import (
	"log"
	"net/http"
	"strconv"

	"kitabdunyasi/models"
	"kitabdunyasi/store"
	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	st *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{st: st}
}

// ListBooks handles GET /api/books with the products-page filters.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	books, err := h.st.Books()
	if err != nil {
		log.Println("ListBooks store error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load catalog")
		return
	}

	opts := ParseOptions(r)
	page, total := Query(books, opts)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"books": page,
		"total": total,
		"page":  opts.Page,
		"limit": opts.Limit,
	})
}

// GetBook handles GET /api/books/:id
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	books, err := h.st.Books()
	if err != nil {
		log.Println("GetBook store error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load catalog")
		return
	}

	for _, b := range books {
		if b.ID == id {
			utils.RespondWithJSON(w, http.StatusOK, b)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Book not found")
}

// FeaturedBooks handles GET /api/featured for the homepage strip.
func (h *Handler) FeaturedBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	books, err := h.st.Books()
	if err != nil {
		log.Println("FeaturedBooks store error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load catalog")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, Featured(books, 4))
}

// Categories handles GET /api/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	type category struct {
		Tag  string `json:"tag"`
		Name string `json:"name"`
	}
	out := make([]category, 0, len(models.Categories))
	for _, tag := range models.Categories {
		out = append(out, category{Tag: tag, Name: models.CategoryNames[tag]})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
