package transfer

import (
	"time"

	"github.com/maheshrc27/nexus/internal/models"
)

type CreatePostRequest struct {
	Content     string     `json:"content" validate:"required"`
	Platforms   []string   `json:"platforms" validate:"min=1,dive,platform"`
	MediaURLs   []string   `json:"mediaUrls" validate:"omitempty,dive,url"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

func (r CreatePostRequest) ToModel(userID string) *models.Post {
	p := &models.Post{
		UserID:      userID,
		Content:     r.Content,
		MediaURLs:   models.StringList(r.MediaURLs),
		Platforms:   models.StringList(r.Platforms).Unique(),
		ScheduledAt: r.ScheduledAt,
	}
	if p.MediaURLs == nil {
		p.MediaURLs = models.StringList{}
	}
	return p
}

type UpdatePostRequest struct {
	Content      *string    `json:"content" validate:"omitnil,min=1"`
	Platforms    []string   `json:"platforms" validate:"omitnil,min=1,dive,platform"`
	MediaURLs    []string   `json:"mediaUrls" validate:"omitnil,dive,url"`
	Status       *string    `json:"status" validate:"omitnil,oneof=draft scheduled published failed"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	ErrorMessage *string    `json:"errorMessage"`
}

func (r UpdatePostRequest) ToUpdate() models.PostUpdate {
	u := models.PostUpdate{
		Content:      r.Content,
		Status:       r.Status,
		ScheduledAt:  r.ScheduledAt,
		ErrorMessage: r.ErrorMessage,
	}
	if r.Platforms != nil {
		platforms := models.StringList(r.Platforms).Unique()
		u.Platforms = &platforms
	}
	if r.MediaURLs != nil {
		media := models.StringList(r.MediaURLs)
		u.MediaURLs = &media
	}
	return u
}
