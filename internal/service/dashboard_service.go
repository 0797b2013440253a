package service

import (
	"context"
	"math"
	"strconv"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	TotalPosts int     `json:"totalPosts"`
	Scheduled  int     `json:"scheduled"`
	Engagement float64 `json:"engagement"`
	Followers  string  `json:"followers"`
}

type DashboardService interface {
	Stats(ctx context.Context, userID string) (*DashboardStats, error)
}

type dashboardService struct {
	s repository.Storage
}

func NewDashboardService(s repository.Storage) DashboardService {
	return &dashboardService{s: s}
}

func (d *dashboardService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	var (
		posts     []*models.Post
		profiles  []*models.SocialProfile
		analytics []*models.Analytics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = d.s.ListPosts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profiles, err = d.s.ListSocialProfiles(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		analytics, err = d.s.ListAnalytics(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalPosts: len(posts)}
	for _, p := range posts {
		if p.Status == models.PostStatusScheduled {
			stats.Scheduled++
		}
	}

	total := 0
	for _, p := range profiles {
		total += p.Followers
	}
	stats.Followers = FormatFollowers(total)
	stats.Engagement = AverageEngagement(analytics)

	return stats, nil
}

// AverageEngagement returns the mean engagement percentage rounded half-up
// to one decimal, or 0 without rows.
func AverageEngagement(rows []*models.Analytics) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range rows {
		sum += a.EngagementPercent()
	}
	mean := sum / float64(len(rows))
	return math.Floor(mean*10+0.5) / 10
}

// FormatFollowers renders totals above 1000 in thousands with one decimal,
// e.g. 1250 -> "1.3K". Smaller totals are returned as plain integers.
func FormatFollowers(total int) string {
	if total > 1000 {
		k := math.Floor(float64(total)/100+0.5) / 10
		return strconv.FormatFloat(k, 'f', -1, 64) + "K"
	}
	return strconv.Itoa(total)
}
