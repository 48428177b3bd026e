package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// DeviceService registers push tokens without ever blocking or failing the
// caller: the backend call runs on the job queue and errors are only logged.
type DeviceService struct {
	sessions ports.SessionService
	backend  ports.DeviceBackend
	prefs    ports.PreferenceStore
	queue    ports.JobQueue
	log      zerolog.Logger
}

func NewDeviceService(sessions ports.SessionService, backend ports.DeviceBackend, prefs ports.PreferenceStore, queue ports.JobQueue, log zerolog.Logger) *DeviceService {
	return &DeviceService{sessions: sessions, backend: backend, prefs: prefs, queue: queue, log: log}
}

// Register reports whether the registration was queued.
func (d *DeviceService) Register(_ context.Context, token, platform string) bool {
	session := d.sessions.Current()
	if !session.Authenticated || token == "" {
		return false
	}

	key := strconv.FormatInt(session.User.ID, 10)
	queued := d.queue.Enqueue(ports.Job{
		Key:  key,
		Name: "device_token",
		Run: func(ctx context.Context) error {
			installationID, err := d.prefs.InstallationID(ctx)
			if err != nil {
				d.log.Warn().Err(err).Msg("installation id unavailable, registering without it")
			}
			return d.backend.SaveDeviceToken(ctx, token, platform, installationID)
		},
	})
	if !queued {
		d.log.Warn().Str("user_id", key).Msg("device token registration dropped")
	}
	return queued
}

var _ ports.DeviceService = (*DeviceService)(nil)
