package swim

import (
	"net"
	"time"

	"github.com/leesd556/swimfd/pb"
)

// recvBufferSize bounds the maximum accepted datagram size.
const recvBufferSize = 1024

// inboundQueueSize bounds the Receiver->Prober ack channel. The Receiver
// never blocks on it: a full queue means the Prober has fallen far behind,
// and the ack is dropped (equivalent to loss, which the phase timeout
// already tolerates).
const inboundQueueSize = 64

// ackEnvelope is what the Receiver hands the Prober: the observed source
// address and the decoded ACK record.
type ackEnvelope struct {
	addr *net.UDPAddr
	msg  *pb.Swim
}

// Receiver runs the single-threaded read/dispatch loop: receive a
// datagram, check the blacklist, decode, and dispatch on message type.
type Receiver struct {
	server *Server
}

// NewReceiver builds a Receiver bound to server, sharing server.inbox with
// whatever Prober is built from the same Server.
func NewReceiver(server *Server) *Receiver {
	return &Receiver{server: server}
}

// Run executes the receive/dispatch loop for the life of the process.
func (r *Receiver) Run() {
	buf := make([]byte, recvBufferSize)
	for {
		if r.server.Paused() {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		n, addr, err := r.server.Socket().RecvFrom(buf)
		if err != nil {
			if IsTimeout(err) {
				continue
			}
			r.server.Logger().Error("udp receive error: %s", err)
			continue
		}

		if r.server.CheckBlacklist(addr.String()) {
			continue
		}

		msg := &pb.Swim{}
		if err := msg.Unmarshal(buf[:n]); err != nil {
			r.server.Logger().Error("%s (from %s)", ErrDecode(err), addr)
			continue
		}

		switch msg.GetType() {
		case pb.SwimType_PING:
			r.processPing(addr, msg)
		case pb.SwimType_ACK:
			r.processAck(addr, msg)
		case pb.SwimType_PINGREQ:
			r.processPingReq(addr, msg)
		default:
			r.server.Logger().Error("dropping datagram from %s: unknown type %v", addr, msg.GetType())
		}
	}
}

// processPing sends an ACK back immediately, then records the sender
// Alive with its address stamped from the observed UDP source — the
// address-spoofing protection: a claimed from address is never trusted
// over the socket's own observed source.
func (r *Receiver) processPing(addr *net.UDPAddr, msg *pb.Swim) {
	r.server.Trace().Emit(EventRecvPing, addr.String(), msg)

	ping := msg.GetPing()
	var forwardTo *pb.Member
	if ping.HasForwardTo() {
		forwardTo = ping.GetForwardTo()
	}
	sendAck(r.server, addr, forwardTo)

	from := MemberFromProto(ping.GetFrom()).WithAddress(addr.String())
	r.server.MemberList().Insert(from, Alive)
	r.server.Logger().Debug("ping from %s@%s", from.Id, addr)
}

// processPingReq resolves the named target in the member list and sends it
// a PING on the requester's behalf. Unknown targets are logged and
// dropped.
func (r *Receiver) processPingReq(addr *net.UDPAddr, msg *pb.Swim) {
	r.server.Trace().Emit(EventRecvPingReq, addr.String(), msg)

	pingreq := msg.GetPingreq()
	target, ok := r.server.MemberList().Get(pingreq.GetTarget().GetId())
	if !ok {
		r.server.Logger().Error("%s (pingreq from %s)", ErrUnknownTarget(pingreq.GetTarget().GetId()), addr)
		return
	}
	targetAddr, err := net.ResolveUDPAddr("udp", target.Address)
	if err != nil {
		r.server.Logger().Error("%s", ErrAddressParse(target.Address, err))
		return
	}
	sendPing(r.server, targetAddr, pingreq.GetFrom())
}

// processAck either forwards the ack to a third party (and does not hand
// it to the Prober) or hands (source address, message) to the Prober's
// inbound queue.
func (r *Receiver) processAck(addr *net.UDPAddr, msg *pb.Swim) {
	r.server.Trace().Emit(EventRecvAck, addr.String(), msg)

	ack := msg.GetAck()
	if ack.HasForwardTo() && ack.GetForwardTo().GetId() != r.server.Self().Id {
		forwardAddr, err := net.ResolveUDPAddr("udp", ack.GetForwardTo().GetAddress())
		if err != nil {
			r.server.Logger().Error("%s", ErrAddressParse(ack.GetForwardTo().GetAddress(), err))
			return
		}
		forwardAck(r.server, forwardAddr, msg)
		return
	}

	select {
	case r.server.inbox <- ackEnvelope{addr: addr, msg: msg}:
	default:
		r.server.Logger().Error("inbound queue full, dropping ack from %s", addr)
	}
}
