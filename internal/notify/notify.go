package notify

import (
	"context"
	"time"

	"capstore/internal/structs"
	"capstore/pkg/logger"
	"capstore/pkg/timer"
	"capstore/pkg/utils"

	"go.uber.org/zap"
)

type Phase string

const (
	PhaseShown     Phase = "shown"
	PhaseDismissed Phase = "dismissed"
)

type (
	Publisher interface {
		Publish(ctx context.Context, evt structs.Event)
	}

	Options struct {
		Logger    logger.Logger
		Publisher Publisher
		Scheduler timer.Scheduler
		Display   time.Duration
		Teardown  time.Duration
		Ack       time.Duration
		NewID     func() string
	}

	Notification struct {
		ID      string
		Message string
		Phase   Phase
	}

	// Center runs notifications and control acknowledgements for one
	// session. Callers hold the session lock; the scheduler it is given
	// must take that same lock before running callbacks.
	Center struct {
		logger    logger.Logger
		publisher Publisher
		scheduler timer.Scheduler
		display   time.Duration
		teardown  time.Duration
		ack       time.Duration
		newID     func() string

		order  []string
		active map[string]*Notification
		acks   map[string]int
		closed bool
	}
)

func New(opts Options) *Center {
	c := &Center{
		logger:    opts.Logger,
		publisher: opts.Publisher,
		scheduler: opts.Scheduler,
		display:   opts.Display,
		teardown:  opts.Teardown,
		ack:       opts.Ack,
		newID:     opts.NewID,
		active:    map[string]*Notification{},
		acks:      map[string]int{},
	}
	if c.logger == nil {
		c.logger = logger.NewNop()
	}
	if c.newID == nil {
		c.newID = utils.GenUUID
	}
	return c
}

// Notify shows message and returns at once: the notification is dismissed
// after the display delay and destroyed after the teardown delay.
func (c *Center) Notify(ctx context.Context, message string) {
	if c.closed {
		return
	}
	ctx = context.WithoutCancel(ctx)

	n := &Notification{ID: c.newID(), Message: message, Phase: PhaseShown}
	c.active[n.ID] = n
	c.order = append(c.order, n.ID)
	c.logger.Debug(ctx, "notification shown", zap.String("id", n.ID), zap.String("message", message))

	c.publish(ctx, structs.EventNotificationAppear, structs.NotificationPayload{ID: n.ID, Message: message})
	c.scheduler.AfterFunc(c.display, func() { c.dismiss(ctx, n.ID) })
}

func (c *Center) dismiss(ctx context.Context, id string) {
	n, ok := c.active[id]
	if !ok || n.Phase != PhaseShown {
		return
	}
	n.Phase = PhaseDismissed
	c.publish(ctx, structs.EventNotificationDismiss, structs.NotificationPayload{ID: id})
	c.scheduler.AfterFunc(c.teardown, func() { c.destroy(ctx, id) })
}

func (c *Center) destroy(ctx context.Context, id string) {
	if _, ok := c.active[id]; !ok {
		return
	}
	delete(c.active, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.publish(ctx, structs.EventNotificationDestroy, structs.NotificationPayload{ID: id})
}

// Acknowledge flashes label on control, then restores it. A second
// acknowledgement of the same control before the restore pushes it back.
func (c *Center) Acknowledge(ctx context.Context, control, label string) {
	if c.closed {
		return
	}
	ctx = context.WithoutCancel(ctx)

	c.acks[control]++
	gen := c.acks[control]
	c.publish(ctx, structs.EventControlAck, structs.ControlPayload{Control: control, Label: label})

	c.scheduler.AfterFunc(c.ack, func() {
		if c.acks[control] != gen {
			return
		}
		delete(c.acks, control)
		c.publish(ctx, structs.EventControlRestore, structs.ControlPayload{Control: control})
	})
}

// Active lists live notifications, oldest first.
func (c *Center) Active() []Notification {
	out := make([]Notification, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.active[id])
	}
	return out
}

// Close drops every live notification; timers still pending find nothing
// to act on.
func (c *Center) Close() {
	c.closed = true
	c.active = map[string]*Notification{}
	c.acks = map[string]int{}
	c.order = nil
}

func (c *Center) publish(ctx context.Context, typ structs.EventType, payload interface{}) {
	if c.closed || c.publisher == nil {
		return
	}
	c.publisher.Publish(ctx, structs.Event{Type: typ, TS: time.Now().UTC(), Payload: payload})
}
