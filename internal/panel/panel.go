package panel

import (
	"context"

	"capstore/pkg/logger"

	"go.uber.org/zap"
)

type State string

const (
	Hidden  State = "hidden"
	Visible State = "visible"
)

type (
	// Surface is the part of the page the panel drives. Showing the panel
	// hides the other content regions; hiding it restores them.
	Surface interface {
		SetPanelVisible(ctx context.Context, visible bool)
		ScrollIntoView(ctx context.Context, target string)
	}

	Refresher interface {
		RefreshPanel(ctx context.Context)
	}

	Panel struct {
		logger    logger.Logger
		surface   Surface
		refresher Refresher

		state    State
		onScreen string
		previous string
	}
)

// New starts hidden with region as the content currently on screen.
func New(lg logger.Logger, surface Surface, refresher Refresher, region string) *Panel {
	if lg == nil {
		lg = logger.NewNop()
	}
	return &Panel{
		logger:    lg,
		surface:   surface,
		refresher: refresher,
		state:     Hidden,
		onScreen:  region,
	}
}

func (p *Panel) State() State {
	return p.state
}

func (p *Panel) Visible() bool {
	return p.state == Visible
}

// OnScreen is the content region last scrolled to.
func (p *Panel) OnScreen() string {
	return p.onScreen
}

func (p *Panel) Toggle(ctx context.Context, target string) {
	if p.state == Hidden {
		p.show(ctx)
		return
	}
	p.hide(ctx, target)
}

// Navigate handles an in-page link. With the panel open the link closes it
// first, so the target scroll happens on restored content.
func (p *Panel) Navigate(ctx context.Context, target string) {
	if target == "" {
		return
	}
	if p.state == Visible {
		p.Toggle(ctx, target)
		return
	}
	p.scroll(ctx, target)
}

func (p *Panel) show(ctx context.Context) {
	p.previous = p.onScreen
	p.state = Visible
	p.logger.Debug(ctx, "panel shown", zap.String("previous", p.previous))

	p.surface.SetPanelVisible(ctx, true)
	p.refresher.RefreshPanel(ctx)
}

func (p *Panel) hide(ctx context.Context, target string) {
	p.state = Hidden
	p.surface.SetPanelVisible(ctx, false)

	if target == "" {
		target = p.previous
	}
	p.previous = ""
	p.logger.Debug(ctx, "panel hidden", zap.String("scroll_to", target))

	if target != "" {
		p.scroll(ctx, target)
	}
}

func (p *Panel) scroll(ctx context.Context, target string) {
	p.onScreen = target
	p.surface.ScrollIntoView(ctx, target)
}
