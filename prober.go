package swim

import (
	"net"
	"time"
)

// ackPollInterval is how long the wait-for-ack loop sleeps between empty
// non-blocking receives.
const ackPollInterval = 10 * time.Millisecond

// pausedSleep is how long the Prober/Receiver sleep between pause checks.
const pausedSleep = 100 * time.Millisecond

// Prober runs the single-threaded protocol-period driver: one direct/
// indirect probe sequence per member per period.
type Prober struct {
	server *Server
}

// NewProber builds a Prober bound to server.
func NewProber(server *Server) *Prober {
	return &Prober{server: server}
}

// Run drives one protocol period per iteration for the life of the
// process: snapshot the membership, probe every pingable member, and
// sleep out any remaining budget before the next period.
func (p *Prober) Run() {
	for {
		if p.server.Paused() {
			time.Sleep(pausedSleep)
			continue
		}

		p.server.UpdateRound()

		for _, member := range p.server.MemberList().CheckList() {
			health, known := p.server.MemberList().HealthOf(member.Id)
			pingable := known && (health == Alive || member.Persistent)

			if p.server.CheckBlacklist(member.Address) {
				continue
			}
			if !pingable {
				continue
			}

			deadline := p.server.Timing().NextProtocolPeriod()
			p.probe(member)
			if wait := time.Until(deadline); wait > 0 {
				time.Sleep(wait)
			}
		}
	}
}

// probe executes the direct/indirect ping sequence for member. It never
// marks a member Alive itself — that happens exactly once, inside
// awaitAck, on a matching ack — so a probe can only ever move a member
// Alive->Suspect->Confirmed, Alive->Alive, or Suspect->Alive, never
// regress out of Confirmed.
func (p *Prober) probe(member Member) {
	addr, err := net.ResolveUDPAddr("udp", member.Address)
	if err != nil {
		p.server.Logger().Error("%s", ErrAddressParse(member.Address, err))
		return
	}

	p.server.Trace().Emit(EventProbeBegin, addr.String(), nil)

	sendPing(p.server, addr, nil)
	if p.awaitAck(member, p.server.Timing().PingTimeout()) {
		p.server.Trace().Emit(EventProbeAckReceived, addr.String(), nil)
		p.server.Trace().Emit(EventProbeComplete, addr.String(), nil)
		return
	}

	p.server.MemberList().InsertHealth(member.Id, Suspect)
	p.server.Logger().Debug("marking %s suspect", member.Id)
	p.server.Trace().Emit(EventProbeSuspect, addr.String(), nil)

	self := p.server.Self()
	for _, helper := range p.server.MemberList().PingreqTargets(self, member) {
		p.server.Trace().Emit(EventProbePingReq, helper.Address, nil)
		sendPingReq(p.server, helper, member)
	}

	if !p.awaitAck(member, p.server.Timing().PingReqTimeout()) {
		p.server.MemberList().InsertHealth(member.Id, Confirmed)
		p.server.Logger().Debug("marking %s confirmed", member.Id)
		p.server.Trace().Emit(EventProbeConfirmed, addr.String(), nil)
	}
	p.server.Trace().Emit(EventProbeComplete, addr.String(), nil)
}

// awaitAck consumes acks from the inbound queue until one matching
// member.Id arrives (returning true, after recording the member Alive) or
// deadline passes (returning false). Non-matching acks are discarded: the
// id match is the sole matching criterion, since a helper-forwarded ack
// satisfies the same phase as a direct one.
func (p *Prober) awaitAck(member Member, deadline time.Time) bool {
	for {
		select {
		case env := <-p.server.inbox:
			ack := env.msg.GetAck()
			from := ack.GetFrom()
			if from.GetId() != member.Id {
				p.server.Logger().Debug("discarding ack from %s; expected %s", from.GetId(), member.Id)
				continue
			}

			result := MemberFromProto(from)
			if !ack.HasForwardTo() {
				result = result.WithAddress(env.addr.String())
			}
			p.server.MemberList().Insert(result, Alive)
			return true
		default:
			if time.Now().After(deadline) {
				return false
			}
			time.Sleep(ackPollInterval)
		}
	}
}
