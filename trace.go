package swim

import "github.com/leesd556/swimfd/pb"

// Event tags for every observable point in the probe/receive lifecycle.
// Each is emitted with the peer address and, where applicable, the
// decoded/encoded record.
const (
	EventRecvPing         = "recv-ping"
	EventRecvAck          = "recv-ack"
	EventRecvPingReq      = "recv-pingreq"
	EventSendPing         = "send-ping"
	EventSendAck          = "send-ack"
	EventSendPingReq      = "send-pingreq"
	EventSendForwardAck   = "send-forward-ack"
	EventProbeBegin       = "probe-begin"
	EventProbeAckReceived = "probe-ack-received"
	EventProbeSuspect     = "probe-marked-suspect"
	EventProbePingReq     = "probe-pingreq"
	EventProbeConfirmed   = "probe-marked-confirmed"
	EventProbeComplete    = "probe-complete"
)

// Trace is the event sink every observation point in Receiver/Prober
// invokes. It is the single collaborator responsible for surfacing
// testable progress; the default implementation only logs, and tests
// substitute a recording Trace.
type Trace interface {
	Emit(event string, peer string, msg *pb.Swim)
}

// LogTrace is the default Trace: it logs every event at Debug level and
// otherwise does nothing. Richer sinks (metrics, event buses) are left to
// the caller to wire in.
type LogTrace struct {
	Logger interface {
		Debug(format string, args ...interface{})
	}
}

// NewLogTrace returns a LogTrace backed by logger.
func NewLogTrace(logger interface {
	Debug(format string, args ...interface{})
}) *LogTrace {
	return &LogTrace{Logger: logger}
}

// Emit implements Trace.
func (t *LogTrace) Emit(event string, peer string, msg *pb.Swim) {
	if t == nil || t.Logger == nil {
		return
	}
	if msg != nil {
		t.Logger.Debug("trace %s peer=%s type=%s", event, peer, msg.GetType())
	} else {
		t.Logger.Debug("trace %s peer=%s", event, peer)
	}
}
