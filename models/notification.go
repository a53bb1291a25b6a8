package models

// Severity classifies a dashboard notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient UI signal. At most one is active per session
// and it is never persisted.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
