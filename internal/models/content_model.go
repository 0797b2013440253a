package models

import "time"

const (
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
)

type ContentLibraryItem struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	FileName  string     `db:"file_name" json:"fileName"`
	FileURL   string     `db:"file_url" json:"fileUrl"`
	FileType  string     `db:"file_type" json:"fileType"`
	FileSize  int64      `db:"file_size" json:"fileSize"`
	Tags      StringList `db:"tags" json:"tags"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

type Analytics struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	PostID         *string   `db:"post_id" json:"postId"`
	Platform       string    `db:"platform" json:"platform"`
	Likes          int       `db:"likes" json:"likes"`
	Comments       int       `db:"comments" json:"comments"`
	Shares         int       `db:"shares" json:"shares"`
	Views          int       `db:"views" json:"views"`
	EngagementRate int       `db:"engagement_rate" json:"engagementRate"` // percentage * 100
	RecordedAt     time.Time `db:"recorded_at" json:"recordedAt"`
}

// EngagementPercent returns the stored rate as a percentage, e.g. 1485 -> 14.85.
func (a Analytics) EngagementPercent() float64 {
	return float64(a.EngagementRate) / 100
}

const (
	GenerationContent  = "content"
	GenerationImage    = "image"
	GenerationHashtags = "hashtags"
	GenerationCaption  = "caption"
)

type AiGeneration struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"userId"`
	GenerationType   string    `db:"generation_type" json:"generationType"`
	Prompt           string    `db:"prompt" json:"prompt"`
	GeneratedContent string    `db:"generated_content" json:"generatedContent"`
	Metadata         Metadata  `db:"metadata" json:"metadata"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}
