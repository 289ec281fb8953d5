package domain

// HealthStatus classifies a single diagnostic check.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
	HealthFail HealthStatus = "fail"
)

// HealthCheck is one line of a doctor report.
type HealthCheck struct {
	Name   string
	Status HealthStatus
	Detail string
}

// HealthReport aggregates diagnostics for the doctor command.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether no check failed outright.
func (r HealthReport) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == HealthFail {
			return false
		}
	}
	return true
}
