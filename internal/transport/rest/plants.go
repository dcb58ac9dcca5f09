package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// multipartOverhead is added to the photo size limit to leave room for the
// form boundaries and the non-file fields.
const multipartOverhead = 64 << 10

type plantService interface {
	List(ctx context.Context) ([]domain.Plant, error)
	Get(ctx context.Context, plantID uuid.UUID) (*domain.Plant, error)
	Create(ctx context.Context, input plant.PlantInput) (*domain.Plant, error)
	Update(ctx context.Context, plantID uuid.UUID, input plant.PlantInput) (*domain.Plant, error)
	Delete(ctx context.Context, plantID uuid.UUID) error
	ListPhotos(ctx context.Context, plantID uuid.UUID) ([]plant.Photo, error)
	UploadPhoto(ctx context.Context, input plant.UploadPhotoInput) (*plant.Photo, error)
	SetCover(ctx context.Context, plantID, photoID uuid.UUID) error
	DeletePhoto(ctx context.Context, plantID, photoID uuid.UUID) error
}

// PlantHandler serves plant and photo endpoints.
type PlantHandler struct {
	svc           plantService
	log           *slog.Logger
	maxPhotoBytes int64
	loc           *time.Location
}

// NewPlantHandler creates a PlantHandler. maxPhotoBytes bounds the size of
// an upload request body; loc reads dates sent without an offset when the
// request carries no time zone.
func NewPlantHandler(svc plantService, logger *slog.Logger, maxPhotoBytes int64, loc *time.Location) *PlantHandler {
	return &PlantHandler{
		svc:           svc,
		log:           logger.With("handler", "plant"),
		maxPhotoBytes: maxPhotoBytes,
		loc:           loc,
	}
}

// ---------------------------------------------------------------------------
// Plants
// ---------------------------------------------------------------------------

// List handles GET /api/plants.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(plants, toPlantResponse))
}

// Get handles GET /api/plants/{id}.
func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlantResponse(p))
}

// Create handles POST /api/plants.
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req plantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input, err := req.toInput(ctxutil.LocationFromCtx(r.Context(), h.loc))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlantResponse(p))
}

// Update handles PUT /api/plants/{id}.
func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req plantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input, err := req.toInput(ctxutil.LocationFromCtx(r.Context(), h.loc))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlantResponse(p))
}

// Delete handles DELETE /api/plants/{id}.
func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Photos
// ---------------------------------------------------------------------------

// ListPhotos handles GET /api/plants/{id}/photos.
func (h *PlantHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	photos, err := h.svc.ListPhotos(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(photos, toPhotoResponse))
}

// UploadPhoto handles POST /api/plants/{id}/photos with a multipart body:
// "file" (required), "captured_at" and "cover" (optional).
func (h *PlantHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if h.maxPhotoBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "photo is too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	var fe domain.FieldErrors
	input := plant.UploadPhotoInput{
		PlantID:  id,
		Filename: header.Filename,
		Content:  file,
	}
	if v := r.FormValue("captured_at"); v != "" {
		input.CapturedAt = parseTimeField(&fe, "captured_at", &v, ctxutil.LocationFromCtx(r.Context(), h.loc))
	}
	if v := r.FormValue("cover"); v != "" {
		cover, err := strconv.ParseBool(v)
		if err != nil {
			fe.Add("cover", "must be a boolean")
		}
		input.MakeCover = cover
	}
	if err := fe.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	photo, err := h.svc.UploadPhoto(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPhotoResponse(photo))
}

// SetCover handles PUT /api/plants/{id}/photos/{photoId}/cover.
func (h *PlantHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	plantID, photoID, err := photoPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.SetCover(r.Context(), plantID, photoID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeletePhoto handles DELETE /api/plants/{id}/photos/{photoId}.
func (h *PlantHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	plantID, photoID, err := photoPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeletePhoto(r.Context(), plantID, photoID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func photoPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	plantID, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	photoID, err := pathUUID(r, "photoId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return plantID, photoID, nil
}
