// Package pb holds the wire message shapes for the failure detector's
// datagram protocol. The types below carry protobuf struct tags and are
// marshaled with github.com/gogo/protobuf/proto; they are hand-authored in
// the shape protoc-gen-gogofaster would produce from the .proto sketched in
// the package doc, since no .proto/generator is part of this tree.
//
// message Member {
//   string id = 1;
//   string address = 2;
//   uint64 incarnation = 3;
//   bool persistent = 4;
// }
// message Ping    { Member from = 1; Member forward_to = 2; }
// message Ack     { Member from = 1; Member forward_to = 2; }
// message PingReq { Member from = 1; Member target = 2; }
// enum SwimType { PING = 0; ACK = 1; PINGREQ = 2; }
// message Swim {
//   SwimType type = 1;
//   Ping ping = 2;
//   Ack ack = 3;
//   PingReq pingreq = 4;
// }
package pb

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// SwimType discriminates the single populated payload carried by a Swim
// record.
type SwimType int32

const (
	SwimType_PING    SwimType = 0
	SwimType_ACK     SwimType = 1
	SwimType_PINGREQ SwimType = 2
)

var SwimType_name = map[SwimType]string{
	SwimType_PING:    "PING",
	SwimType_ACK:     "ACK",
	SwimType_PINGREQ: "PINGREQ",
}

func (t SwimType) String() string {
	if name, ok := SwimType_name[t]; ok {
		return name
	}
	return fmt.Sprintf("SwimType(%d)", int32(t))
}

// Member is the wire form of a failure-detector member identity.
type Member struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Address     string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	Incarnation uint64 `protobuf:"varint,3,opt,name=incarnation,proto3" json:"incarnation,omitempty"`
	Persistent  bool   `protobuf:"varint,4,opt,name=persistent,proto3" json:"persistent,omitempty"`
}

func (m *Member) Reset()         { *m = Member{} }
func (m *Member) String() string { return proto.CompactTextString(m) }
func (*Member) ProtoMessage()    {}

func (m *Member) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Member) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

func (m *Member) GetIncarnation() uint64 {
	if m != nil {
		return m.Incarnation
	}
	return 0
}

func (m *Member) GetPersistent() bool {
	if m != nil {
		return m.Persistent
	}
	return false
}

// Ping carries a direct or forwarded (on-behalf-of) probe.
type Ping struct {
	From      *Member `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	ForwardTo *Member `protobuf:"bytes,2,opt,name=forward_to,proto3" json:"forward_to,omitempty"`
}

func (m *Ping) Reset()         { *m = Ping{} }
func (m *Ping) String() string { return proto.CompactTextString(m) }
func (*Ping) ProtoMessage()    {}

func (m *Ping) GetFrom() *Member {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *Ping) GetForwardTo() *Member {
	if m != nil {
		return m.ForwardTo
	}
	return nil
}

func (m *Ping) HasForwardTo() bool { return m.GetForwardTo() != nil }

// Ack answers a Ping, directly or via a helper relay.
type Ack struct {
	From      *Member `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	ForwardTo *Member `protobuf:"bytes,2,opt,name=forward_to,proto3" json:"forward_to,omitempty"`
}

func (m *Ack) Reset()         { *m = Ack{} }
func (m *Ack) String() string { return proto.CompactTextString(m) }
func (*Ack) ProtoMessage()    {}

func (m *Ack) GetFrom() *Member {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *Ack) GetForwardTo() *Member {
	if m != nil {
		return m.ForwardTo
	}
	return nil
}

func (m *Ack) HasForwardTo() bool { return m.GetForwardTo() != nil }

// PingReq asks its recipient to ping Target on From's behalf.
type PingReq struct {
	From   *Member `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Target *Member `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
}

func (m *PingReq) Reset()         { *m = PingReq{} }
func (m *PingReq) String() string { return proto.CompactTextString(m) }
func (*PingReq) ProtoMessage()    {}

func (m *PingReq) GetFrom() *Member {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *PingReq) GetTarget() *Member {
	if m != nil {
		return m.Target
	}
	return nil
}

// isSwimPayload tags the wrapper types below so callers can type-switch on
// Swim.GetPayload() the way the teacher's handler switched on
// *pb.Message_Ping/*pb.Message_Ack/*pb.Message_IndirectPing.
type isSwimPayload interface {
	isSwimPayload()
}

type Swim_Ping struct{ Ping *Ping }
type Swim_Ack struct{ Ack *Ack }
type Swim_Pingreq struct{ Pingreq *PingReq }

func (*Swim_Ping) isSwimPayload()    {}
func (*Swim_Ack) isSwimPayload()     {}
func (*Swim_Pingreq) isSwimPayload() {}

// Swim is the single record type carried by every datagram. Exactly one of
// Ping, Ack, Pingreq is populated, selected by Type; proto3 marshaling
// omits nil message fields so this behaves like a oneof on the wire
// without needing oneof marshal hooks.
type Swim struct {
	Type    SwimType `protobuf:"varint,1,opt,name=type,proto3,enum=pb.SwimType" json:"type,omitempty"`
	Ping    *Ping    `protobuf:"bytes,2,opt,name=ping,proto3" json:"ping,omitempty"`
	Ack     *Ack     `protobuf:"bytes,3,opt,name=ack,proto3" json:"ack,omitempty"`
	Pingreq *PingReq `protobuf:"bytes,4,opt,name=pingreq,proto3" json:"pingreq,omitempty"`
}

func (m *Swim) Reset()         { *m = Swim{} }
func (m *Swim) String() string { return proto.CompactTextString(m) }
func (*Swim) ProtoMessage()    {}

func (m *Swim) GetType() SwimType {
	if m != nil {
		return m.Type
	}
	return SwimType_PING
}

func (m *Swim) GetPing() *Ping {
	if m != nil {
		return m.Ping
	}
	return nil
}

func (m *Swim) GetAck() *Ack {
	if m != nil {
		return m.Ack
	}
	return nil
}

func (m *Swim) GetPingreq() *PingReq {
	if m != nil {
		return m.Pingreq
	}
	return nil
}

// GetPayload boxes whichever of Ping/Ack/Pingreq is populated so callers
// can type-switch on it, mirroring the teacher's oneof ergonomics.
func (m *Swim) GetPayload() isSwimPayload {
	switch m.GetType() {
	case SwimType_PING:
		if p := m.GetPing(); p != nil {
			return &Swim_Ping{Ping: p}
		}
	case SwimType_ACK:
		if a := m.GetAck(); a != nil {
			return &Swim_Ack{Ack: a}
		}
	case SwimType_PINGREQ:
		if p := m.GetPingreq(); p != nil {
			return &Swim_Pingreq{Pingreq: p}
		}
	}
	return nil
}

// Marshal encodes the record using gogo/protobuf's reflection-based codec.
func (m *Swim) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

// Unmarshal decodes a record previously produced by Marshal.
func (m *Swim) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m)
}

// NewPing builds a PING record, optionally redirecting the synthesized ack.
func NewPing(from *Member, forwardTo *Member) *Swim {
	return &Swim{Type: SwimType_PING, Ping: &Ping{From: from, ForwardTo: forwardTo}}
}

// NewAck builds an ACK record, optionally addressed to a third party.
func NewAck(from *Member, forwardTo *Member) *Swim {
	return &Swim{Type: SwimType_ACK, Ack: &Ack{From: from, ForwardTo: forwardTo}}
}

// NewPingReq builds a PINGREQ record asking the recipient to probe target.
func NewPingReq(from *Member, target *Member) *Swim {
	return &Swim{Type: SwimType_PINGREQ, Pingreq: &PingReq{From: from, Target: target}}
}
