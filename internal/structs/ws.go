package structs

import "time"

type EventType string

const (
	EventBadgeRefresh        EventType = "badge.refresh"
	EventPanelRefresh        EventType = "panel.refresh"
	EventPanelVisibility     EventType = "panel.visibility"
	EventScroll              EventType = "view.scroll"
	EventNotificationAppear  EventType = "notification.appear"
	EventNotificationDismiss EventType = "notification.dismiss"
	EventNotificationDestroy EventType = "notification.destroy"
	EventControlAck          EventType = "control.ack"
	EventControlRestore      EventType = "control.restore"
)

type Event struct {
	Type    EventType   `json:"type"`
	TS      time.Time   `json:"ts"`
	Payload interface{} `json:"payload,omitempty"`
}

type PanelPayload struct {
	Model PanelModel `json:"model"`
	HTML  string     `json:"html"`
}

type VisibilityPayload struct {
	Visible bool `json:"visible"`
}

type ScrollPayload struct {
	Target string `json:"target"`
}

type NotificationPayload struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

type ControlPayload struct {
	Control string `json:"control"`
	Label   string `json:"label,omitempty"`
}
