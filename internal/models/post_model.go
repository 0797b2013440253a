package models

import "time"

type Post struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"userId"`
	Content      string     `db:"content" json:"content"`
	MediaURLs    StringList `db:"media_urls" json:"mediaUrls"`
	Platforms    StringList `db:"platforms" json:"platforms"`
	Status       string     `db:"status" json:"status"` // draft, scheduled, published, failed
	ScheduledAt  *time.Time `db:"scheduled_at" json:"scheduledAt"`
	PublishedAt  *time.Time `db:"published_at" json:"publishedAt"`
	ErrorMessage *string    `db:"error_message" json:"errorMessage"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// PostUpdate is a partial update. Nil fields leave the stored value unchanged.
type PostUpdate struct {
	Content      *string
	MediaURLs    *StringList
	Platforms    *StringList
	Status       *string
	ScheduledAt  *time.Time
	PublishedAt  *time.Time
	ErrorMessage *string

	// ClearPublishedAt resets publishedAt to null; it wins over PublishedAt.
	ClearPublishedAt bool
}

func (u PostUpdate) IsEmpty() bool {
	return u.Content == nil && u.MediaURLs == nil && u.Platforms == nil && u.Status == nil &&
		u.ScheduledAt == nil && u.PublishedAt == nil && u.ErrorMessage == nil && !u.ClearPublishedAt
}

// Apply merges the supplied fields into p.
func (u PostUpdate) Apply(p *Post) {
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.MediaURLs != nil {
		p.MediaURLs = append(StringList{}, (*u.MediaURLs)...)
	}
	if u.Platforms != nil {
		p.Platforms = append(StringList{}, (*u.Platforms)...)
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.ScheduledAt != nil {
		t := *u.ScheduledAt
		p.ScheduledAt = &t
	}
	if u.PublishedAt != nil {
		t := *u.PublishedAt
		p.PublishedAt = &t
	}
	if u.ClearPublishedAt {
		p.PublishedAt = nil
	}
	if u.ErrorMessage != nil {
		msg := *u.ErrorMessage
		p.ErrorMessage = &msg
	}
}

// Columns returns the supplied fields keyed by column name.
func (u PostUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Content != nil {
		cols["content"] = *u.Content
	}
	if u.MediaURLs != nil {
		cols["media_urls"] = *u.MediaURLs
	}
	if u.Platforms != nil {
		cols["platforms"] = *u.Platforms
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.ScheduledAt != nil {
		cols["scheduled_at"] = *u.ScheduledAt
	}
	if u.PublishedAt != nil {
		cols["published_at"] = *u.PublishedAt
	}
	if u.ClearPublishedAt {
		cols["published_at"] = nil
	}
	if u.ErrorMessage != nil {
		cols["error_message"] = *u.ErrorMessage
	}
	return cols
}
