package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/plantcare-backend/internal/transport/middleware"
)

// Routes groups everything the router mounts.
type Routes struct {
	Health   *HealthHandler
	Plants   *PlantHandler
	Care     *CareHandler
	Schedule *ScheduleHandler

	// Photos serves stored blobs under PhotosPrefix. Nil disables it.
	Photos       http.Handler
	PhotosPrefix string

	// UploadLimit wraps the photo upload endpoint. Nil means no limit.
	UploadLimit middleware.Middleware
}

// NewRouter registers all endpoints on a ServeMux and wraps it with mw.
func NewRouter(rt Routes, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /api/plants", rt.Plants.List)
	mux.HandleFunc("POST /api/plants", rt.Plants.Create)
	mux.HandleFunc("GET /api/plants/{id}", rt.Plants.Get)
	mux.HandleFunc("PUT /api/plants/{id}", rt.Plants.Update)
	mux.HandleFunc("DELETE /api/plants/{id}", rt.Plants.Delete)

	mux.HandleFunc("GET /api/plants/{id}/logs", rt.Care.ListLogs)
	mux.HandleFunc("POST /api/plants/{id}/logs", rt.Care.CreateLog)
	mux.HandleFunc("GET /api/plants/{id}/profile", rt.Care.GetProfile)
	mux.HandleFunc("PUT /api/plants/{id}/profile", rt.Care.UpsertProfile)
	mux.HandleFunc("GET /api/care-summaries", rt.Care.Summaries)

	upload := middleware.Chain(rt.UploadLimit)(http.HandlerFunc(rt.Plants.UploadPhoto))
	mux.HandleFunc("GET /api/plants/{id}/photos", rt.Plants.ListPhotos)
	mux.Handle("POST /api/plants/{id}/photos", upload)
	mux.HandleFunc("PUT /api/plants/{id}/photos/{photoId}/cover", rt.Plants.SetCover)
	mux.HandleFunc("DELETE /api/plants/{id}/photos/{photoId}", rt.Plants.DeletePhoto)

	mux.HandleFunc("GET /api/schedules", rt.Schedule.Schedules)
	mux.HandleFunc("GET /api/events", rt.Schedule.Events)
	mux.HandleFunc("GET /api/calendar.ics", rt.Schedule.Calendar)

	if rt.Photos != nil && strings.HasPrefix(rt.PhotosPrefix, "/") {
		prefix := strings.TrimSuffix(rt.PhotosPrefix, "/")
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix, noDirListing(rt.Photos)))
	}

	return middleware.Chain(mw)(mux)
}

// noDirListing hides directory indexes of a file server.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
