// Package worker holds background deliveries that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"taxiads/config"
	"taxiads/internal/delivery"
	"taxiads/internal/infra/transfer"
	"taxiads/internal/util"

	"go.uber.org/fx"
)

// janitorInterval is how often idle upload sessions are swept.
const janitorInterval = time.Minute

// UploadJanitorParams holds dependencies for the upload janitor, injected by Fx.
type UploadJanitorParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions *transfer.SessionStore
	Chunks   *transfer.ChunkStore
}

// uploadJanitor periodically cancels upload sessions that have gone idle
// longer than the configured TTL and discards their chunks.
type uploadJanitor struct {
	cfg      *config.Config
	logger   *slog.Logger
	sessions *transfer.SessionStore
	chunks   *transfer.ChunkStore
	done     chan struct{}
}

// NewUploadJanitor creates the janitor delivery
func NewUploadJanitor(params UploadJanitorParams) (delivery.Delivery, error) {
	janitor := &uploadJanitor{
		cfg:      params.Cfg,
		logger:   params.Logger,
		sessions: params.Sessions,
		chunks:   params.Chunks,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: janitor.stop,
	})

	return janitor, nil
}

// Serve runs the sweep loop until the janitor is stopped
func (j *uploadJanitor) Serve(ctx context.Context) error {
	ttl := j.cfg.Transfer.SessionTTL
	j.logger.Info("Starting upload janitor",
		slog.Duration("ttl", ttl),
		slog.Duration("interval", janitorInterval))

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep(ttl)
		case <-j.done:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (j *uploadJanitor) sweep(ttl time.Duration) {
	purged := j.sessions.PurgeIdle(ttl)
	for _, session := range purged {
		if err := j.chunks.Remove(session.Token); err != nil {
			j.logger.Warn("Failed to remove chunks of stale upload session",
				slog.String("upload_id", session.Token),
				slog.Any("error", err))
		}

		j.logger.Info("Purged stale upload session",
			slog.String("upload_id", session.Token),
			slog.String("advertisement_id", session.AdvertisementID),
			slog.Int("received_chunks", session.ReceivedCount()),
			slog.String("idle", util.FormatDuration(time.Since(session.LastActivityAt))))
	}
}

func (j *uploadJanitor) stop(ctx context.Context) error {
	j.logger.Info("Shutting down upload janitor")
	close(j.done)

	return nil
}
