package audit

import (
	"time"
)

// Action is the kind of vendor activity being recorded
type Action string

const (
	ActionLogin         Action = "login"
	ActionLogout        Action = "logout"
	ActionProductCreate Action = "product_create"
	ActionProductUpdate Action = "product_update"
	ActionProductDelete Action = "product_delete"
	ActionProfileUpdate Action = "profile_update"
	ActionOrderStatus   Action = "order_status"
)

// Entry is one line of the activity log. Subject identifies what was
// acted on (product id, order id, vendor id for auth events).
type Entry struct {
	ID        string            `json:"id"`
	Action    Action            `json:"action"`
	Subject   string            `json:"subject"`
	Summary   string            `json:"summary"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details,omitempty"`
}

// Describe renders the entry for the dashboard's recent-activity list
func (e *Entry) Describe() string {
	if e.Summary != "" {
		return e.Summary
	}
	return string(e.Action) + " " + e.Subject
}
