package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JuliusM5/lidija-sub000/internal/service"
)

// AdminListMedia lists uploaded files, optionally narrowed to one directory.
func (h *Handlers) AdminListMedia(w http.ResponseWriter, r *http.Request) {
	files, err := h.MediaRepo.List(r.Context(), r.URL.Query().Get("directory"))
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, files, http.StatusOK)
}

// AdminUploadMedia accepts a multipart upload ("file" field, "directory"
// field selecting recipes/about/gallery).
func (h *Handlers) AdminUploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize + 1<<20); err != nil {
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	directory := r.FormValue("directory")
	if directory == "" {
		directory = "gallery"
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploaded, err := h.MediaService.Upload(r.Context(), directory, &service.UploadedImage{
		Filename: header.Filename,
		Reader:   file,
	})
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, uploaded, http.StatusCreated)
}

func (h *Handlers) AdminDeleteMedia(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.MediaService.Delete(r.Context(), vars["directory"], vars["filename"]); err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, map[string]string{"deleted": vars["filename"]}, http.StatusOK)
}
