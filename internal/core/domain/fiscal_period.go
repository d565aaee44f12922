package domain

// PeriodStatus is the state of a fiscal period (one church-month).
//
// OPEN is the default. CLOSED is a soft milestone for finance staff review
// and does not block writes. LOCKED is the hard gate: the journal engine
// rejects any mutation dated inside a LOCKED period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
	PeriodLocked PeriodStatus = "LOCKED"
)

// CanTransitionTo reports whether the status change is permitted.
// OPEN may be locked directly, skipping the review window.
// Reopening either CLOSED or LOCKED is the privileged correction path.
func (s PeriodStatus) CanTransitionTo(next PeriodStatus) bool {
	switch s {
	case PeriodOpen:
		return next == PeriodClosed || next == PeriodLocked
	case PeriodClosed:
		return next == PeriodLocked || next == PeriodOpen
	case PeriodLocked:
		return next == PeriodOpen
	}
	return false
}

// IsValid reports whether the status is one of the known period states.
func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodOpen, PeriodClosed, PeriodLocked:
		return true
	}
	return false
}

// BlocksWrites reports whether journal mutations dated in this period are rejected.
func (s PeriodStatus) BlocksWrites() bool {
	return s == PeriodLocked
}

// FiscalPeriod is a church-scoped calendar month whose status gates mutation
// of journals dated within it.
type FiscalPeriod struct {
	PeriodID string       `json:"periodID"` // Primary key (UUID)
	ChurchID string       `json:"churchID"`
	Year     int          `json:"year"`
	Month    int          `json:"month"` // 1..12
	Status   PeriodStatus `json:"status"`
	AuditFields
}
