package session

import (
	"context"
	"sync"

	"capstore/internal/cart"
	"capstore/internal/notify"
	"capstore/internal/panel"
	"capstore/internal/structs"
)

// Session is one page load. Its lock plays the part of the browser event
// loop: commands, panel toggles and timer callbacks each run to completion
// before the next one starts.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      cart.Controller
	panel     *panel.Panel
	notices   *notify.Center
	presenter *presenter
	renderer  PanelRenderer
	closed    bool
}

func (s *Session) Dispatch(ctx context.Context, cmd structs.Command) (structs.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return structs.Snapshot{}, structs.ErrSessionNotFound
	}
	err := s.cart.Dispatch(ctx, cmd)
	return s.snapshotLocked(), err
}

func (s *Session) Toggle(ctx context.Context, target string) structs.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.panel.Toggle(ctx, target)
	}
	return s.snapshotLocked()
}

func (s *Session) Navigate(ctx context.Context, target string) structs.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.panel.Navigate(ctx, target)
	}
	return s.snapshotLocked()
}

// Notify shows a message without touching the cart.
func (s *Session) Notify(ctx context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.notices.Notify(ctx, message)
	}
}

func (s *Session) Snapshot() structs.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) Entries() []structs.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Entries()
}

func (s *Session) Notifications() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notices.Active()
}

func (s *Session) PanelHTML() ([]byte, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, structs.ErrSessionNotFound
	}
	model := s.cart.RenderModel()
	s.mu.Unlock()

	return s.renderer.Panel(model)
}

func (s *Session) snapshotLocked() structs.Snapshot {
	return structs.Snapshot{
		Badge:        s.cart.Badge(),
		Panel:        s.cart.RenderModel(),
		PanelVisible: s.panel.Visible(),
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.notices.Close()
	s.presenter.broadcaster.Drop(s.ID)
}
