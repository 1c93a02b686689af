package media

import (
	"log"
	"net/http"

	"kitabdunyasi/utils"

	"github.com/julienschmidt/httprouter"
)

// UploadCover accepts a multipart book cover for the back office.
// POST /api/admin/books/cover, form field "cover"
func UploadCover(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}
	file, header, err := r.FormFile("cover")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cover file is required")
		return
	}

	name, thumb, err := SaveCover(file, header)
	if err != nil {
		log.Printf("cover upload failed: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Cover upload failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"image": "/" + CoverDir + "/" + name,
		"thumb": "/" + ThumbDir + "/" + thumb,
	})
}
