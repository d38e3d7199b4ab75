package session

import (
	"context"
	"fmt"
	"time"

	"capstore/internal/cart"
	"capstore/internal/notify"
	"capstore/internal/panel"
	"capstore/internal/render"
	"capstore/internal/structs"
	"capstore/internal/ws"
	"capstore/pkg/cache"
	"capstore/pkg/config"
	"capstore/pkg/logger"
	"capstore/pkg/timer"
	"capstore/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Options(
		fx.Provide(New),
		fx.Invoke(RunJanitor),
	)
)

type (
	Params struct {
		fx.In
		Config    config.IConfig
		Logger    logger.Logger
		Cache     cache.ICache
		Hub       *ws.Hub
		Renderer  *render.Renderer
		Scheduler timer.Scheduler
	}

	Service interface {
		Create(ctx context.Context) *Session
		Get(ctx context.Context, id string) (*Session, error)
		Close(ctx context.Context, id string)
		Sweep(ctx context.Context) int
	}

	Settings struct {
		Lang            utils.Lang
		Currency        string
		HideBadgeAtZero bool
		LandingRegion   string
		TTL             time.Duration
		Display         time.Duration
		Teardown        time.Duration
		Ack             time.Duration
	}

	manager struct {
		logger      logger.Logger
		cache       cache.ICache
		broadcaster Broadcaster
		renderer    PanelRenderer
		scheduler   timer.Scheduler
		settings    Settings
	}
)

func New(p Params) Service {
	lang, ok := utils.ParseLang(p.Config.GetString("storefront.language"))
	if !ok {
		p.Logger.Warn(context.Background(), "unknown storefront.language, using en",
			zap.String("language", p.Config.GetString("storefront.language")))
		lang = utils.EN
	}

	return NewManager(p.Logger, p.Cache, p.Hub, p.Renderer, p.Scheduler, Settings{
		Lang:            lang,
		Currency:        p.Config.GetString("cart.currency_symbol"),
		HideBadgeAtZero: p.Config.GetBool("cart.badge_hide_at_zero"),
		LandingRegion:   p.Config.GetString("storefront.landing_region"),
		TTL:             p.Config.GetDuration("session.ttl"),
		Display:         p.Config.GetDuration("notification.display"),
		Teardown:        p.Config.GetDuration("notification.teardown"),
		Ack:             p.Config.GetDuration("notification.ack"),
	})
}

func NewManager(lg logger.Logger, c cache.ICache, b Broadcaster, r PanelRenderer, sch timer.Scheduler, settings Settings) Service {
	return &manager{
		logger:      lg,
		cache:       c,
		broadcaster: b,
		renderer:    r,
		scheduler:   sch,
		settings:    settings,
	}
}

func (m *manager) Create(ctx context.Context) *Session {
	id := utils.GenKSUID()
	s := &Session{ID: id, renderer: m.renderer}

	s.presenter = &presenter{
		sessionID:   id,
		logger:      m.logger,
		broadcaster: m.broadcaster,
		renderer:    m.renderer,
	}
	s.notices = notify.New(notify.Options{
		Logger:    m.logger,
		Publisher: s.presenter,
		Scheduler: timer.Serialized(&s.mu, m.scheduler),
		Display:   m.settings.Display,
		Teardown:  m.settings.Teardown,
		Ack:       m.settings.Ack,
	})
	s.cart = cart.New(cart.Options{
		Logger:          m.logger,
		View:            s.presenter,
		Notifier:        s.notices,
		Lang:            m.settings.Lang,
		Currency:        m.settings.Currency,
		HideBadgeAtZero: m.settings.HideBadgeAtZero,
	})
	s.panel = panel.New(m.logger, s.presenter, s.cart, m.settings.LandingRegion)

	m.cache.Set(id, s, m.settings.TTL)
	m.logger.Info(m.logger.WithSession(ctx, id), "session created")
	return s
}

func (m *manager) Get(ctx context.Context, id string) (*Session, error) {
	if utils.StrEmpty(id) {
		return nil, structs.ErrSessionNotFound
	}
	v, ok := m.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", structs.ErrSessionNotFound, id)
	}
	s, ok := v.(*Session)
	if !ok {
		m.logger.Error(ctx, "unexpected value in session cache", zap.String("session", id))
		return nil, structs.ErrSessionNotFound
	}
	return s, nil
}

func (m *manager) Close(ctx context.Context, id string) {
	v, ok := m.cache.Delete(id)
	if !ok {
		return
	}
	if s, ok := v.(*Session); ok {
		s.close()
		m.logger.Info(m.logger.WithSession(ctx, id), "session closed")
	}
}

func (m *manager) Sweep(ctx context.Context) int {
	expired := m.cache.Sweep(ctx)
	for _, v := range expired {
		if s, ok := v.(*Session); ok {
			s.close()
		}
	}
	if len(expired) > 0 {
		m.logger.Info(ctx, "expired sessions swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}

type JanitorParams struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Sessions  Service
}

// RunJanitor sweeps idle sessions for as long as the app runs.
func RunJanitor(p JanitorParams) {
	interval := p.Config.GetDuration("session.sweep_interval")
	if interval <= 0 {
		interval = time.Minute
	}
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						p.Sessions.Sweep(context.Background())
					case <-done:
						return
					}
				}
			}()
			p.Logger.Info(ctx, "session janitor started", zap.Duration("interval", interval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
