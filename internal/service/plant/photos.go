package plant

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// ListPhotos returns the photos of a plant, cover first, then newest first.
func (s *Service) ListPhotos(ctx context.Context, plantID uuid.UUID) ([]Photo, error) {
	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return nil, err
	}

	photos, err := s.photos.ListByPlant(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	out := make([]Photo, 0, len(photos))
	for _, ph := range photos {
		out = append(out, s.withURL(ph))
	}
	return out, nil
}

// UploadPhoto stores an image under "<plantID>/<uuid><ext>" and records it.
// The content must be an image no larger than the configured limit.
func (s *Service) UploadPhoto(ctx context.Context, input UploadPhotoInput) (*Photo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedPlant(ctx, input.PlantID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, s.cfg.MaxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "empty")
	}
	if int64(len(data)) > s.cfg.MaxPhotoBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("max %d bytes", s.cfg.MaxPhotoBytes))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.NewValidationError("file", "must be an image")
	}

	key := input.PlantID.String() + "/" + uuid.NewString() + extensionFor(contentType, input.Filename)
	if err := s.blobs.Put(ctx, key, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	var created *domain.PlantPhoto
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.photos.Create(ctx, &domain.PlantPhoto{
			PlantID:     input.PlantID,
			StoragePath: key,
			CapturedAt:  input.CapturedAt,
		})
		if err != nil {
			return fmt.Errorf("create photo: %w", err)
		}

		if input.MakeCover {
			if err := s.photos.SetCover(ctx, input.PlantID, created.ID); err != nil {
				return fmt.Errorf("set cover: %w", err)
			}
			created.IsCover = true
		}
		return nil
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.log.WarnContext(ctx, "orphan photo blob",
				slog.String("path", key),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "photo uploaded",
		slog.String("plant_id", input.PlantID.String()),
		slog.String("path", key),
		slog.Int("bytes", len(data)),
	)

	out := s.withURL(*created)
	return &out, nil
}

// SetCover marks one photo as the plant's cover and unmarks the others.
func (s *Service) SetCover(ctx context.Context, plantID, photoID uuid.UUID) error {
	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return err
	}

	if _, err := s.photos.GetByID(ctx, plantID, photoID); err != nil {
		return fmt.Errorf("get photo: %w", err)
	}

	if err := s.photos.SetCover(ctx, plantID, photoID); err != nil {
		return fmt.Errorf("set cover: %w", err)
	}
	return nil
}

// DeletePhoto removes the blob and then the photo record.
func (s *Service) DeletePhoto(ctx context.Context, plantID, photoID uuid.UUID) error {
	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return err
	}

	photo, err := s.photos.GetByID(ctx, plantID, photoID)
	if err != nil {
		return fmt.Errorf("get photo: %w", err)
	}

	if err := s.blobs.Delete(ctx, photo.StoragePath); err != nil {
		return fmt.Errorf("delete photo blob: %w", err)
	}

	if err := s.photos.Delete(ctx, plantID, photoID); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

func (s *Service) withURL(ph domain.PlantPhoto) Photo {
	return Photo{PlantPhoto: ph, URL: s.blobs.URL(ph.StoragePath)}
}

func extensionFor(contentType, filename string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	return strings.ToLower(filepath.Ext(filename))
}
