// Package alert queues transient notifications against a bounded set of
// visible slots, schedules auto-dismiss timers, and promotes waiting alerts
// in arrival order as slots free up.
package alert

// Severity indicates how an alert should be presented.
// Severity never affects ordering; the queue is strictly FIFO.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Icon returns a single-character indicator for the severity
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✗"
	default:
		return "ℹ"
	}
}
