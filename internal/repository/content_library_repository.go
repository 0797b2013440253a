package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
)

var contentLibraryColumns = []string{"id", "user_id", "file_name", "file_url", "file_type", "file_size", "tags", "created_at"}

func (s *postgresStorage) ListContentLibrary(ctx context.Context, userID string) ([]*models.ContentLibraryItem, error) {
	items := []*models.ContentLibraryItem{}
	q := s.sb.Select(contentLibraryColumns...).From("content_library").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if err := s.selectRows(ctx, &items, q, "list", "content_library"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *postgresStorage) GetContentLibraryItem(ctx context.Context, id string) (*models.ContentLibraryItem, bool, error) {
	var item models.ContentLibraryItem
	q := s.sb.Select(contentLibraryColumns...).From("content_library").Where(sq.Eq{"id": id})
	found, err := s.get(ctx, &item, q, "get", "content_library")
	if err != nil || !found {
		return nil, false, err
	}
	return &item, true, nil
}

func (s *postgresStorage) CreateContentLibraryItem(ctx context.Context, item *models.ContentLibraryItem) (*models.ContentLibraryItem, error) {
	i := *item
	i.ID = uuid.NewString()
	i.CreatedAt = now()
	if i.Tags == nil {
		i.Tags = models.StringList{}
	}

	q := s.sb.Insert("content_library").Columns(contentLibraryColumns...).Values(
		i.ID, i.UserID, i.FileName, i.FileURL, i.FileType, i.FileSize, i.Tags, i.CreatedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "content_library"); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *postgresStorage) DeleteContentLibraryItem(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "content_library", id)
}
