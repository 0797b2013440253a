package transfer

import "github.com/maheshrc27/nexus/internal/models"

// CreateAnalyticsRequest records a metrics snapshot. EngagementRate is the
// percentage multiplied by 100.
type CreateAnalyticsRequest struct {
	PostID         *string `json:"postId"`
	Platform       string  `json:"platform" validate:"platform"`
	Likes          int     `json:"likes" validate:"min=0"`
	Comments       int     `json:"comments" validate:"min=0"`
	Shares         int     `json:"shares" validate:"min=0"`
	Views          int     `json:"views" validate:"min=0"`
	EngagementRate int     `json:"engagementRate" validate:"min=0"`
}

func (r CreateAnalyticsRequest) ToModel(userID string) *models.Analytics {
	return &models.Analytics{
		UserID:         userID,
		PostID:         r.PostID,
		Platform:       r.Platform,
		Likes:          r.Likes,
		Comments:       r.Comments,
		Shares:         r.Shares,
		Views:          r.Views,
		EngagementRate: r.EngagementRate,
	}
}
