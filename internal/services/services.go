package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/scribehq/scribe-backend/internal/calendar"
	"github.com/scribehq/scribe-backend/internal/config"
	"github.com/scribehq/scribe-backend/internal/contacts"
	"github.com/scribehq/scribe-backend/internal/database/repositories"
	"github.com/scribehq/scribe-backend/internal/drive"
	"github.com/scribehq/scribe-backend/internal/google"
	"github.com/scribehq/scribe-backend/internal/providers"
	"github.com/scribehq/scribe-backend/internal/summarizer"
)

// Services holds all service instances
type Services struct {
	Session *summarizer.Session
	Gateway providers.Gateway
	Presets *repositories.PresetRepository
	Google  *GoogleServices
}

// NewServices creates all service instances
func NewServices(cfg *config.Config, db *sqlx.DB, registry *providers.Registry) (*Services, error) {
	gateway, err := registry.Get(cfg.Provider.Type)
	if err != nil {
		return nil, err
	}

	pricing := summarizer.Pricing{
		InputPerMillion:  cfg.Pricing.InputPerMillion,
		OutputPerMillion: cfg.Pricing.OutputPerMillion,
	}
	session := summarizer.NewSession(gateway, cfg.Provider.Model, pricing, cfg.Summarizer.MaxContextChars)

	return &Services{
		Session: session,
		Gateway: gateway,
		Presets: repositories.NewPresetRepository(db),
		Google: &GoogleServices{
			auth: google.NewAuthenticator(cfg.Google.CredentialsPath, cfg.Google.TokenPath),
		},
	}, nil
}

// GoogleServices lazily builds the Workspace clients so the server can
// start without a cached OAuth token; a collaborator failure surfaces on
// first use instead of killing startup.
type GoogleServices struct {
	auth *google.Authenticator

	mu       sync.Mutex
	calendar *calendar.Client
	drive    *drive.Client
	contacts *contacts.Client
}

// Auth exposes the authenticator for the authorization endpoints
func (g *GoogleServices) Auth() *google.Authenticator {
	return g.auth
}

func (g *GoogleServices) init(ctx context.Context) error {
	if g.calendar != nil {
		return nil
	}

	httpClient, err := g.auth.HTTPClient(ctx)
	if err != nil {
		return fmt.Errorf("google authentication required: %w", err)
	}

	cal, err := calendar.NewClient(ctx, httpClient)
	if err != nil {
		return err
	}
	drv, err := drive.NewClient(ctx, httpClient)
	if err != nil {
		return err
	}
	ppl, err := contacts.NewClient(ctx, httpClient)
	if err != nil {
		return err
	}

	g.calendar, g.drive, g.contacts = cal, drv, ppl
	return nil
}

// Calendar returns the Calendar client, authenticating on first use
func (g *GoogleServices) Calendar(ctx context.Context) (*calendar.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.init(ctx); err != nil {
		return nil, err
	}
	return g.calendar, nil
}

// Drive returns the Drive client, authenticating on first use
func (g *GoogleServices) Drive(ctx context.Context) (*drive.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.init(ctx); err != nil {
		return nil, err
	}
	return g.drive, nil
}

// Contacts returns the People client, authenticating on first use
func (g *GoogleServices) Contacts(ctx context.Context) (*contacts.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.init(ctx); err != nil {
		return nil, err
	}
	return g.contacts, nil
}
