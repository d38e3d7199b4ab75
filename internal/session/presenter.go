package session

import (
	"context"
	"time"

	"capstore/internal/structs"
	"capstore/pkg/logger"

	"go.uber.org/zap"
)

type (
	Broadcaster interface {
		BroadcastToSession(ctx context.Context, sessionID string, evt structs.Event)
		Drop(sessionID string)
	}

	PanelRenderer interface {
		Panel(model structs.PanelModel) ([]byte, error)
	}
)

// presenter is the session's side of the presentation surface. Every
// refresh it is handed goes out to the page as an event.
type presenter struct {
	sessionID   string
	logger      logger.Logger
	broadcaster Broadcaster
	renderer    PanelRenderer
}

func (p *presenter) RefreshBadge(ctx context.Context, badge structs.Badge) {
	p.Publish(ctx, structs.Event{Type: structs.EventBadgeRefresh, Payload: badge})
}

func (p *presenter) RefreshPanel(ctx context.Context, model structs.PanelModel) {
	html, err := p.renderer.Panel(model)
	if err != nil {
		p.logger.Error(ctx, "err on render panel", zap.Error(err))
		return
	}
	p.Publish(ctx, structs.Event{
		Type:    structs.EventPanelRefresh,
		Payload: structs.PanelPayload{Model: model, HTML: string(html)},
	})
}

func (p *presenter) SetPanelVisible(ctx context.Context, visible bool) {
	p.Publish(ctx, structs.Event{Type: structs.EventPanelVisibility, Payload: structs.VisibilityPayload{Visible: visible}})
}

func (p *presenter) ScrollIntoView(ctx context.Context, target string) {
	p.Publish(ctx, structs.Event{Type: structs.EventScroll, Payload: structs.ScrollPayload{Target: target}})
}

func (p *presenter) Publish(ctx context.Context, evt structs.Event) {
	if evt.TS.IsZero() {
		evt.TS = time.Now().UTC()
	}
	p.broadcaster.BroadcastToSession(ctx, p.sessionID, evt)
}
