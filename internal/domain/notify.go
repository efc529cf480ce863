package domain

// Severity selects the styling of a notification. All severities dismiss the
// same way: automatically after a fixed delay, or earlier by the user.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Icon maps a severity to its Bootstrap icon name.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "check-circle-fill"
	case SeverityError:
		return "x-circle-fill"
	case SeverityWarning:
		return "exclamation-triangle-fill"
	default:
		return "info-circle-fill"
	}
}

// CSSClass maps a severity to its alert class.
func (s Severity) CSSClass() string {
	switch s {
	case SeveritySuccess:
		return "alert-success"
	case SeverityError:
		return "alert-danger"
	case SeverityWarning:
		return "alert-warning"
	default:
		return "alert-info"
	}
}

// Notification is a short-lived toast shown to the user.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
