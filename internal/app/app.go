// Package app wires the stores, backend client and services into one
// process-wide container shared by the HTTP shell and the bemctl CLI.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/api"
	"github.com/bemapp/orgadmin-shell/internal/api/handler"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
	"github.com/bemapp/orgadmin-shell/internal/core/service"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/backend"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/db/memory"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/db/mongo"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/db/redis"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/db/sqlite"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/queue"
	"github.com/bemapp/orgadmin-shell/internal/infrastructure/vault"
	"github.com/bemapp/orgadmin-shell/internal/pkg/config"
)

// App owns every long-lived component of the shell.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	Store   ports.KeyValueStore
	Vault   *vault.Vault
	Backend *backend.Client
	Queue   *queue.Dispatcher

	Sessions      *service.SessionService
	Navigation    *service.NavigationService
	Announcements *service.AnnouncementService
	Proposals     *service.ProposalService
	Roles         *service.RoleService
	Directory     *service.DirectoryService
	Devices       *service.DeviceService
}

// Option customises New.
type Option func(*options)

type options struct {
	store ports.KeyValueStore
}

// WithStore skips STORE_DRIVER and uses kv directly.
func WithStore(kv ports.KeyValueStore) Option {
	return func(o *options) { o.store = kv }
}

// New opens the configured store and builds every service. The caller must
// Close the App.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	kv := o.store
	if kv == nil {
		var err error
		if kv, err = OpenStore(ctx, cfg.Store); err != nil {
			return nil, err
		}
	}

	var vaultOpts []vault.Option
	if cfg.Session.SealKey != "" {
		key, err := vault.ParseSealKey(cfg.Session.SealKey)
		if err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("session seal key: %w", err)
		}
		vaultOpts = append(vaultOpts, vault.WithSealKey(key))
	}
	v := vault.New(kv, vaultOpts...)

	client, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	}, v, log.With().Str("component", "backend").Logger())
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	component := func(name string) zerolog.Logger {
		return log.With().Str("component", name).Logger()
	}

	dispatcher := queue.NewDispatcher(cfg.QueueWorkers, component("queue"))
	sessions := service.NewSessionService(client, v, component("session"),
		service.WithTokenInspector(backend.NewJWTInspector()))

	return &App{
		cfg:           cfg,
		log:           log,
		Store:         kv,
		Vault:         v,
		Backend:       client,
		Queue:         dispatcher,
		Sessions:      sessions,
		Navigation:    service.NewNavigationService(sessions, v, component("navigation")),
		Announcements: service.NewAnnouncementService(sessions, client, component("announcements")),
		Proposals:     service.NewProposalService(sessions, client, component("proposals")),
		Roles:         service.NewRoleService(sessions, client, component("roles")),
		Directory:     service.NewDirectoryService(sessions, client, component("directory")),
		Devices:       service.NewDeviceService(sessions, client, v, dispatcher, component("devices")),
	}, nil
}

// OpenStore opens the key-value store named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (ports.KeyValueStore, error) {
	switch cfg.Driver {
	case config.StoreMemory:
		return memory.NewStore(), nil
	case config.StoreSQLite:
		return sqlite.Open(filepath.Clean(cfg.SQLitePath))
	case config.StoreRedis:
		return redis.Open(ctx, redis.Config{
			Addr:   cfg.Redis.Addr,
			DB:     cfg.Redis.DB,
			Prefix: cfg.Redis.Prefix,
		})
	case config.StoreMongo:
		return mongo.Open(ctx, mongo.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Start runs the background queue, restores the persisted session and, when
// configured, queues the device push token registration.
func (a *App) Start(ctx context.Context) {
	a.Queue.Start(ctx)

	session := a.Sessions.Restore(ctx)
	if !session.Authenticated {
		a.log.Info().Msg("no persisted session")
		return
	}
	if token := a.cfg.Device.PushToken; token != "" {
		a.Devices.Register(ctx, token, a.cfg.Device.Platform)
	}
}

// Router builds the HTTP shell. reg may be nil for the default registry.
func (a *App) Router(reg prometheus.Registerer) *echo.Echo {
	return api.NewRouter(api.Dependencies{
		Sessions:      a.Sessions,
		Navigation:    a.Navigation,
		Announcements: a.Announcements,
		Proposals:     a.Proposals,
		Roles:         a.Roles,
		Directory:     a.Directory,
		Devices:       a.Devices,
		Health: map[string]handler.Pinger{
			"store":   a.Store,
			"backend": a.Backend,
		},
		Registerer: reg,
	}, a.log)
}

// Close drains the queue and closes the store.
func (a *App) Close() error {
	a.Queue.Stop()
	return a.Store.Close()
}
