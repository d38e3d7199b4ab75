package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"capstore/internal/structs"
	"capstore/pkg/cache"
	"capstore/pkg/logger"
	"capstore/pkg/timer"
	"capstore/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type broadcastRecorder struct {
	mu      sync.Mutex
	events  map[string][]structs.Event
	dropped []string
}

func (b *broadcastRecorder) BroadcastToSession(_ context.Context, sessionID string, evt structs.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.events == nil {
		b.events = map[string][]structs.Event{}
	}
	b.events[sessionID] = append(b.events[sessionID], evt)
}

func (b *broadcastRecorder) Drop(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dropped = append(b.dropped, sessionID)
}

func (b *broadcastRecorder) types(sessionID string) []structs.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []structs.EventType
	for _, e := range b.events[sessionID] {
		out = append(out, e.Type)
	}
	return out
}

type stubRenderer struct{}

func (stubRenderer) Panel(model structs.PanelModel) ([]byte, error) {
	return []byte("<aside>" + string(model.Kind) + "</aside>"), nil
}

func newTestManager(ttl time.Duration) (Service, *broadcastRecorder, *timer.Manual) {
	b := &broadcastRecorder{}
	clock := timer.NewManual()
	m := NewManager(logger.NewNop(), cache.New(cache.Params{Logger: logger.NewNop()}), b, stubRenderer{}, clock, Settings{
		Lang:            utils.EN,
		Currency:        " MXN",
		HideBadgeAtZero: true,
		LandingRegion:   "#home",
		TTL:             ttl,
		Display:         3 * time.Second,
		Teardown:        300 * time.Millisecond,
		Ack:             2 * time.Second,
	})
	return m, b, clock
}

func addCmd(name, price string) structs.Command {
	return structs.Command{Op: structs.OpAdd, Name: name, Price: price, Icon: "🧢", Control: "add-" + name}
}

func TestCreateAndGet(t *testing.T) {
	m, _, _ := newTestManager(time.Minute)
	ctx := context.Background()

	s := m.Create(ctx)
	require.NotEmpty(t, s.ID)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Badge.Count)
	assert.True(t, snap.Badge.Hidden)
	assert.False(t, snap.PanelVisible)
	assert.Equal(t, structs.PanelEmpty, snap.Panel.Kind)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, structs.ErrSessionNotFound)
	_, err = m.Get(ctx, "")
	assert.ErrorIs(t, err, structs.ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _, _ := newTestManager(time.Minute)
	ctx := context.Background()

	a := m.Create(ctx)
	b := m.Create(ctx)
	assert.NotEqual(t, a.ID, b.ID)

	_, err := a.Dispatch(ctx, addCmd("Classic", "100"))
	require.NoError(t, err)

	assert.Len(t, a.Entries(), 1)
	assert.Empty(t, b.Entries())
}

func TestDispatchPublishesEvents(t *testing.T) {
	m, rec, _ := newTestManager(time.Minute)
	ctx := context.Background()
	s := m.Create(ctx)

	snap, err := s.Dispatch(ctx, addCmd("Classic", "150"))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Badge.Count)
	assert.False(t, snap.Badge.Hidden)
	assert.Equal(t, structs.PanelPopulated, snap.Panel.Kind)

	assert.Equal(t, []structs.EventType{
		structs.EventBadgeRefresh,
		structs.EventPanelRefresh,
		structs.EventControlAck,
		structs.EventNotificationAppear,
	}, rec.types(s.ID))
}

func TestNotificationTimersRunThroughSession(t *testing.T) {
	m, rec, clock := newTestManager(time.Minute)
	ctx := context.Background()
	s := m.Create(ctx)

	s.Notify(ctx, "hello")
	require.Len(t, s.Notifications(), 1)

	clock.Advance(3 * time.Second)
	clock.Advance(300 * time.Millisecond)
	assert.Empty(t, s.Notifications())

	assert.Equal(t, []structs.EventType{
		structs.EventNotificationAppear,
		structs.EventNotificationDismiss,
		structs.EventNotificationDestroy,
	}, rec.types(s.ID))
}

func TestToggleAndNavigate(t *testing.T) {
	m, rec, _ := newTestManager(time.Minute)
	ctx := context.Background()
	s := m.Create(ctx)

	snap := s.Toggle(ctx, "")
	assert.True(t, snap.PanelVisible)

	snap = s.Navigate(ctx, "#contact")
	assert.False(t, snap.PanelVisible)

	types := rec.types(s.ID)
	assert.Contains(t, types, structs.EventPanelVisibility)
	assert.Contains(t, types, structs.EventScroll)
	assert.Contains(t, types, structs.EventPanelRefresh)
}

func TestPanelHTML(t *testing.T) {
	m, _, _ := newTestManager(time.Minute)
	ctx := context.Background()
	s := m.Create(ctx)

	html, err := s.PanelHTML()
	require.NoError(t, err)
	assert.Equal(t, "<aside>empty</aside>", string(html))
}

func TestCloseStopsSession(t *testing.T) {
	m, rec, clock := newTestManager(time.Minute)
	ctx := context.Background()
	s := m.Create(ctx)

	s.Notify(ctx, "pending")
	m.Close(ctx, s.ID)

	_, err := m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, structs.ErrSessionNotFound)
	assert.Equal(t, []string{s.ID}, rec.dropped)

	_, err = s.Dispatch(ctx, addCmd("Classic", "100"))
	assert.ErrorIs(t, err, structs.ErrSessionNotFound)

	_, err = s.PanelHTML()
	assert.ErrorIs(t, err, structs.ErrSessionNotFound)

	before := len(rec.types(s.ID))
	clock.Advance(10 * time.Second)
	assert.Len(t, rec.types(s.ID), before)
}

func TestSweepClosesExpiredSessions(t *testing.T) {
	m, rec, _ := newTestManager(time.Nanosecond)
	ctx := context.Background()
	s := m.Create(ctx)

	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, m.Sweep(ctx))
	assert.Equal(t, []string{s.ID}, rec.dropped)
	assert.Equal(t, 0, m.Sweep(ctx))
}
