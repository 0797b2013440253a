package service

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ContentLibraryService interface {
	List(ctx context.Context, userID string) ([]*models.ContentLibraryItem, error)
	Upload(ctx context.Context, userID, fileName string, data []byte, tags []string) (*models.ContentLibraryItem, error)
	Delete(ctx context.Context, userID, id string) error
}

type contentLibraryService struct {
	cl    repository.ContentLibraryRepository
	store ObjectStorage
}

func NewContentLibraryService(cl repository.ContentLibraryRepository, store ObjectStorage) ContentLibraryService {
	return &contentLibraryService{cl: cl, store: store}
}

// sniff detects the library file type from the file's magic bytes.
func sniff(data []byte) (types.Type, string, bool) {
	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown {
		return types.Unknown, "", false
	}
	switch {
	case filetype.IsImage(data):
		return kind, models.FileTypeImage, true
	case filetype.IsVideo(data):
		return kind, models.FileTypeVideo, true
	case filetype.IsDocument(data), kind.Extension == "pdf":
		return kind, models.FileTypeDocument, true
	}
	return kind, "", false
}

func (s *contentLibraryService) List(ctx context.Context, userID string) ([]*models.ContentLibraryItem, error) {
	return s.cl.ListContentLibrary(ctx, userID)
}

func (s *contentLibraryService) Upload(ctx context.Context, userID, fileName string, data []byte, tags []string) (*models.ContentLibraryItem, error) {
	if len(data) == 0 {
		return nil, NewValidationError("file is required")
	}

	kind, fileType, ok := sniff(data)
	if !ok {
		slog.Info("rejected upload", "file_name", fileName, "extension", kind.Extension)
		return nil, ErrUnsupportedFileType
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	key := id + "." + kind.Extension

	url, err := s.store.Upload(ctx, key, data, kind.MIME.Value)
	if err != nil {
		return nil, err
	}

	cleaned := models.StringList{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if fileName == "" {
		fileName = key
	}

	item, err := s.cl.CreateContentLibraryItem(ctx, &models.ContentLibraryItem{
		UserID:   userID,
		FileName: fileName,
		FileURL:  url,
		FileType: fileType,
		FileSize: int64(len(data)),
		Tags:     cleaned.Unique(),
	})
	if err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			slog.Info(derr.Error())
		}
		return nil, err
	}
	return item, nil
}

func (s *contentLibraryService) Delete(ctx context.Context, userID, id string) error {
	item, exists, err := s.cl.GetContentLibraryItem(ctx, id)
	if err != nil {
		return err
	}
	if !exists || item.UserID != userID {
		return ErrContentNotFound
	}

	deleted, err := s.cl.DeleteContentLibraryItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContentNotFound
	}

	// The row is gone either way; an orphaned object is only logged.
	if err := s.store.Delete(ctx, path.Base(item.FileURL)); err != nil {
		slog.Info(err.Error())
	}
	return nil
}
