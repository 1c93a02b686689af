package receipts

import (
	"errors"
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

// PrintReceipt serves the order receipt PDF. GET /api/orders/:id/receipt
func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("id")
	requesterID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	pdfBytes, err := h.svc.Generate(orderID, requesterID, role)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Sifariş tapılmadı")
		return
	case errors.Is(err, ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Bu sifariş sizə aid deyil")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Receipt generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+orderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
