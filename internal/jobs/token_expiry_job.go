package job

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/robfig/cron"
)

const concurrencyLimit = 10

// TokenExpiryJob marks profiles whose platform token has expired as pending
// so the dashboard stops reporting them as connected.
type TokenExpiryJob struct {
	sr  repository.SocialProfileRepository
	now func() time.Time
}

func NewTokenExpiryJob(sr repository.SocialProfileRepository) *TokenExpiryJob {
	return &TokenExpiryJob{sr: sr, now: time.Now}
}

// Schedule registers the sweep on c using a cron spec such as "@every 10m".
func (j *TokenExpiryJob) Schedule(c *cron.Cron, spec string) error {
	return c.AddFunc(spec, j.DisconnectExpired)
}

func (j *TokenExpiryJob) DisconnectExpired() {
	n, err := j.Run(context.Background())
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if n > 0 {
		slog.Info("disconnected profiles with expired tokens", "count", n)
	}
}

// Run performs one sweep and returns the number of profiles disconnected.
func (j *TokenExpiryJob) Run(ctx context.Context) (int, error) {
	profiles, err := j.sr.ListExpiredSocialProfiles(ctx, j.now().UTC())
	if err != nil {
		return 0, err
	}

	var (
		wg           sync.WaitGroup
		disconnected int64
	)
	semaphore := make(chan struct{}, concurrencyLimit)
	pending := 0

	for _, p := range profiles {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(p *models.SocialProfile) {
			defer wg.Done()
			defer func() { <-semaphore }()

			_, ok, err := j.sr.UpdateSocialProfile(ctx, p.ID, models.SocialProfileUpdate{IsConnected: &pending})
			if err != nil {
				slog.Info("unable to disconnect profile", "profile_id", p.ID, "err", err)
				return
			}
			if ok {
				atomic.AddInt64(&disconnected, 1)
			}
		}(p)
	}

	wg.Wait()
	return int(disconnected), nil
}
