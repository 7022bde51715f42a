package swim

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leesd556/swimfd/pb"
)

func udpAddr(t *testing.T, s string) *net.UDPAddr {
	t.Helper()
	addr, err := net.ResolveUDPAddr("udp", s)
	require.NoError(t, err)
	return addr
}

// TestProcessPingStampsObservedAddress is the address-spoofing protection
// law: a PING whose from claims address A' results in the recipient's
// member list holding the observed UDP source A, not A'.
func TestProcessPingStampsObservedAddress(t *testing.T) {
	server := startTestServer(t)
	r := NewReceiver(server)

	claimed := &pb.Member{Id: "spoofed-id", Address: "9.9.9.9:9999"}
	observed := udpAddr(t, "127.0.0.1:12345")

	r.processPing(observed, pb.NewPing(claimed, nil))

	got, ok := server.MemberList().Get("spoofed-id")
	require.True(t, ok)
	assert.Equal(t, observed.String(), got.Address)
	health, _ := server.MemberList().HealthOf("spoofed-id")
	assert.Equal(t, Alive, health)
}

// TestProcessPingWithForwardToRecordsSender dispatches a ping that carries
// a forward_to. The synthesized ack's forward_to is not observed here (the
// outbound socket write has no peer to read it); the test checks that the
// dispatch completes and the sender is recorded at its observed address.
func TestProcessPingWithForwardToRecordsSender(t *testing.T) {
	server := startTestServer(t)
	r := NewReceiver(server)

	from := &pb.Member{Id: "from-id", Address: "1.1.1.1:1"}
	forwardTo := &pb.Member{Id: "forward-id", Address: "2.2.2.2:2"}
	observed := udpAddr(t, "127.0.0.1:22222")

	r.processPing(observed, pb.NewPing(from, forwardTo))

	got, ok := server.MemberList().Get("from-id")
	require.True(t, ok)
	assert.Equal(t, observed.String(), got.Address)
}

// TestProcessAckForwardedToSelfIsConsumedNotReforwarded is the protocol law: an ack
// whose forward_to.id equals self.id is consumed by the Prober (handed to
// the inbox) and never re-sent.
func TestProcessAckForwardedToSelfIsConsumedNotReforwarded(t *testing.T) {
	server := startTestServer(t)
	r := NewReceiver(server)

	self := server.Self().ToProto()
	ackFrom := &pb.Member{Id: "peer-id", Address: "3.3.3.3:3"}
	observed := udpAddr(t, "127.0.0.1:33333")

	r.processAck(observed, pb.NewAck(ackFrom, self))

	select {
	case env := <-server.inbox:
		assert.Equal(t, "peer-id", env.msg.GetAck().GetFrom().GetId())
	default:
		t.Fatal("expected the ack to be handed to the inbound queue")
	}
}

// TestProcessAckForwardedToOtherIsForwardedNotConsumed checks the
// complementary branch: an ack addressed to a third party takes the
// forwarding path and never reaches the inbox. The forwarded send itself
// is not observed here.
func TestProcessAckForwardedToOtherIsForwardedNotConsumed(t *testing.T) {
	server := startTestServer(t)
	r := NewReceiver(server)

	thirdParty := &pb.Member{Id: "third-party", Address: "127.0.0.1:0"}
	ackFrom := &pb.Member{Id: "peer-id", Address: "3.3.3.3:3"}
	observed := udpAddr(t, "127.0.0.1:33333")

	r.processAck(observed, pb.NewAck(ackFrom, thirdParty))

	select {
	case <-server.inbox:
		t.Fatal("ack addressed to a third party must not reach the inbox")
	default:
	}
}

// TestProcessPingReqUnknownTargetDrops covers the "unknown target" error
// policy: log and drop, no panic, no send.
func TestProcessPingReqUnknownTargetDrops(t *testing.T) {
	server := startTestServer(t)
	r := NewReceiver(server)

	from := &pb.Member{Id: "from-id", Address: "127.0.0.1:1"}
	target := &pb.Member{Id: "unknown-id", Address: "127.0.0.1:2"}
	observed := udpAddr(t, "127.0.0.1:44444")

	assert.NotPanics(t, func() {
		r.processPingReq(observed, pb.NewPingReq(from, target))
	})
}
