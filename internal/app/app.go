// Package app assembles the site from its configuration.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bastianbuilt.com/internal/config"
	"bastianbuilt.com/internal/content"
	"bastianbuilt.com/internal/handlers"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/mail"
	"bastianbuilt.com/internal/metrics"
	"bastianbuilt.com/internal/services"
	"bastianbuilt.com/internal/storage"
)

// App holds the wired services and router for one process
type App struct {
	Config   *config.Config
	Logger   logging.Logger
	Metrics  *metrics.Metrics
	Projects *services.ProjectService
	Contacts *services.ContactService
	Router   chi.Router

	store *storage.Lazy
}

// Option customises an App before its router is built
type Option func(*options)

type options struct {
	logger logging.Logger
	opener storage.Opener
	sender mail.Sender
}

// WithLogger replaces the configured logger
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOpener replaces how the contact store is opened
func WithOpener(open storage.Opener) Option {
	return func(o *options) { o.opener = open }
}

// WithSender replaces the notification sender
func WithSender(s mail.Sender) Option {
	return func(o *options) { o.sender = s }
}

// New wires the site described by cfg. The contact store is opened on the
// first submission, so a missing database does not stop the pages from
// being served.
func New(cfg *config.Config, opts ...Option) *App {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = cfg.Logger()
	}
	if o.opener == nil {
		o.opener = storage.ConfigOpener(cfg)
	}
	if o.sender == nil && cfg.MailEnabled() {
		o.sender = mail.NewResendSender(cfg.Mail.ResendAPIKey)
	}

	m := metrics.New()
	store := storage.NewLazy(o.opener)
	projects := services.NewProjectService(content.Default())

	contacts := services.NewContactService(store, o.sender, cfg.Mail, o.logger, m)

	var public http.FileSystem
	if cfg.Server.PublicDir != "" {
		public = http.Dir(cfg.Server.PublicDir)
	}

	router := handlers.SetupRoutes(handlers.Deps{
		Config:   cfg,
		Logger:   o.logger,
		Metrics:  m,
		Projects: projects,
		Contacts: contacts,
		Public:   public,
	})

	return &App{
		Config:   cfg,
		Logger:   o.logger,
		Metrics:  m,
		Projects: projects,
		Contacts: contacts,
		Router:   router,
		store:    store,
	}
}

// Server returns an HTTP server for the router on the configured address
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              a.Config.Server.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Close releases the contact store
func (a *App) Close(ctx context.Context) error {
	if err := a.store.Close(); err != nil {
		a.Logger.Error(ctx, err, "Failed to close contact store")
		return err
	}
	return nil
}
