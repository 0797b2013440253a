package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
)

var aiGenerationColumns = []string{"id", "user_id", "generation_type", "prompt", "generated_content", "metadata", "created_at"}

func (s *postgresStorage) CreateAiGeneration(ctx context.Context, g *models.AiGeneration) (*models.AiGeneration, error) {
	row := *g
	row.ID = uuid.NewString()
	row.CreatedAt = now()
	if row.Metadata == nil {
		row.Metadata = models.Metadata{}
	}

	q := s.sb.Insert("ai_generations").Columns(aiGenerationColumns...).Values(
		row.ID, row.UserID, row.GenerationType, row.Prompt, row.GeneratedContent, row.Metadata, row.CreatedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "ai_generations"); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *postgresStorage) ListAiGenerations(ctx context.Context, userID string) ([]*models.AiGeneration, error) {
	rows := []*models.AiGeneration{}
	q := s.sb.Select(aiGenerationColumns...).From("ai_generations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if err := s.selectRows(ctx, &rows, q, "list", "ai_generations"); err != nil {
		return nil, err
	}
	return rows, nil
}
