package panel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSurface struct {
	calls []string
}

func (f *fakeSurface) SetPanelVisible(_ context.Context, visible bool) {
	if visible {
		f.calls = append(f.calls, "show")
		return
	}
	f.calls = append(f.calls, "hide")
}

func (f *fakeSurface) ScrollIntoView(_ context.Context, target string) {
	f.calls = append(f.calls, "scroll "+target)
}

func (f *fakeSurface) RefreshPanel(context.Context) {
	f.calls = append(f.calls, "refresh")
}

func newPanel() (*Panel, *fakeSurface) {
	s := &fakeSurface{}
	return New(nil, s, s, "#home"), s
}

func TestStartsHidden(t *testing.T) {
	p, s := newPanel()

	assert.Equal(t, Hidden, p.State())
	assert.False(t, p.Visible())
	assert.Empty(t, s.calls)
}

func TestToggleShowRefreshes(t *testing.T) {
	p, s := newPanel()

	p.Toggle(context.Background(), "")

	assert.Equal(t, Visible, p.State())
	assert.Equal(t, []string{"show", "refresh"}, s.calls)
}

func TestHideReturnsToPreviousRegion(t *testing.T) {
	p, s := newPanel()
	ctx := context.Background()

	p.Toggle(ctx, "")
	p.Toggle(ctx, "")

	assert.Equal(t, Hidden, p.State())
	assert.Equal(t, []string{"show", "refresh", "hide", "scroll #home"}, s.calls)
}

func TestHideWithTarget(t *testing.T) {
	p, s := newPanel()
	ctx := context.Background()

	p.Toggle(ctx, "")
	p.Toggle(ctx, "#products")

	assert.Equal(t, []string{"show", "refresh", "hide", "scroll #products"}, s.calls)
	assert.Equal(t, "#products", p.OnScreen())
}

func TestHideWithoutPreviousRegion(t *testing.T) {
	s := &fakeSurface{}
	p := New(nil, s, s, "")
	ctx := context.Background()

	p.Toggle(ctx, "")
	p.Toggle(ctx, "")

	assert.Equal(t, []string{"show", "refresh", "hide"}, s.calls)
}

func TestNavigateWhileHiddenScrollsDirectly(t *testing.T) {
	p, s := newPanel()

	p.Navigate(context.Background(), "#sell")

	assert.Equal(t, Hidden, p.State())
	assert.Equal(t, []string{"scroll #sell"}, s.calls)
	assert.Equal(t, "#sell", p.OnScreen())
}

func TestNavigateWhileVisibleClosesPanelFirst(t *testing.T) {
	p, s := newPanel()
	ctx := context.Background()

	p.Navigate(ctx, "#sell")
	p.Toggle(ctx, "")
	s.calls = nil

	p.Navigate(ctx, "#contact")

	assert.Equal(t, Hidden, p.State())
	assert.Equal(t, []string{"hide", "scroll #contact"}, s.calls)
}

func TestShowRemembersLatestRegion(t *testing.T) {
	p, s := newPanel()
	ctx := context.Background()

	p.Navigate(ctx, "#sell")
	p.Toggle(ctx, "")
	p.Toggle(ctx, "")

	assert.Equal(t, "scroll #sell", s.calls[len(s.calls)-1])
}
