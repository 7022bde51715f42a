package swim

import (
	"strings"

	"github.com/google/uuid"

	"github.com/leesd556/swimfd/pb"
)

// Health is the tagged liveness label a MemberList holds for a Member.
// Ordering of strictness: Alive < Suspect < Confirmed.
type Health int

const (
	Alive Health = iota
	Suspect
	Confirmed
)

func (h Health) String() string {
	switch h {
	case Alive:
		return "Alive"
	case Suspect:
		return "Suspect"
	case Confirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// Member is an identity + network address + incarnation counter. It is a
// value type: updates replace the whole record but preserve the Id key.
type Member struct {
	Id          string
	Address     string
	Incarnation uint64
	Persistent  bool
}

// NewMember creates a fresh local member: a random 32-hex id, incarnation 0.
func NewMember(address string) Member {
	return Member{
		Id:          newMemberID(),
		Address:     address,
		Incarnation: 0,
	}
}

func newMemberID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")
}

// ToProto converts to the wire shape carried inside Ping/Ack/PingReq.
func (m Member) ToProto() *pb.Member {
	return &pb.Member{
		Id:          m.Id,
		Address:     m.Address,
		Incarnation: m.Incarnation,
		Persistent:  m.Persistent,
	}
}

// MemberFromProto converts from the wire shape. Returns the zero Member if
// p is nil.
func MemberFromProto(p *pb.Member) Member {
	if p == nil {
		return Member{}
	}
	return Member{
		Id:          p.GetId(),
		Address:     p.GetAddress(),
		Incarnation: p.GetIncarnation(),
		Persistent:  p.GetPersistent(),
	}
}

// WithAddress returns a copy of m with Address replaced. Used to stamp the
// observed UDP source address over whatever address a peer claimed.
func (m Member) WithAddress(addr string) Member {
	m.Address = addr
	return m
}
