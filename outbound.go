package swim

import (
	"net"

	"github.com/leesd556/swimfd/pb"
)

// sendPing, sendAck, sendPingReq, and forwardAck are the pure senders: each
// builds a record from the self member and invokes the socket's send. Send
// errors are logged and swallowed — UDP is unreliable by design, and a
// dropped send is indistinguishable from loss, handled by the probe
// timeout.

func sendPing(server *Server, addr *net.UDPAddr, forwardTo *pb.Member) {
	msg := pb.NewPing(server.Self().ToProto(), forwardTo)
	sendSwim(server, addr, msg, EventSendPing)
}

func sendAck(server *Server, addr *net.UDPAddr, forwardTo *pb.Member) {
	msg := pb.NewAck(server.Self().ToProto(), forwardTo)
	sendSwim(server, addr, msg, EventSendAck)
}

func sendPingReq(server *Server, helper Member, target Member) {
	addr, err := net.ResolveUDPAddr("udp", helper.Address)
	if err != nil {
		server.Logger().Error("%s", ErrAddressParse(helper.Address, err))
		return
	}
	msg := pb.NewPingReq(server.Self().ToProto(), target.ToProto())
	sendSwim(server, addr, msg, EventSendPingReq)
}

// forwardAck re-sends a previously-decoded ACK verbatim to addr, on behalf
// of the helper that relayed it.
func forwardAck(server *Server, addr *net.UDPAddr, msg *pb.Swim) {
	data, err := msg.Marshal()
	if err != nil {
		server.Logger().Error("error encoding forwarded ack: %s", err)
		return
	}
	if err := server.Socket().SendTo(data, addr); err != nil {
		server.Logger().Error("error forwarding ack to %s: %s", addr, err)
	}
	server.Trace().Emit(EventSendForwardAck, addr.String(), msg)
}

func sendSwim(server *Server, addr *net.UDPAddr, msg *pb.Swim, event string) {
	data, err := msg.Marshal()
	if err != nil {
		server.Logger().Error("error encoding %s: %s", event, err)
		return
	}
	if err := server.Socket().SendTo(data, addr); err != nil {
		server.Logger().Error("error sending %s to %s: %s", event, addr, err)
	}
	server.Trace().Emit(event, addr.String(), msg)
}
