package swim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMember(t *testing.T) {
	m := NewMember("127.0.0.1:7000")
	assert.Len(t, m.Id, 32)
	assert.Equal(t, uint64(0), m.Incarnation)
	assert.False(t, m.Persistent)
	assert.Equal(t, "127.0.0.1:7000", m.Address)
}

func TestMemberProtoRoundTrip(t *testing.T) {
	m := NewMember("10.0.0.1:9000")
	m.Persistent = true
	m.Incarnation = 3

	got := MemberFromProto(m.ToProto())
	assert.Equal(t, m, got)
}

func TestMemberFromProtoNil(t *testing.T) {
	assert.Equal(t, Member{}, MemberFromProto(nil))
}

func TestMemberWithAddress(t *testing.T) {
	m := NewMember("1.2.3.4:1")
	got := m.WithAddress("5.6.7.8:2")
	assert.Equal(t, "5.6.7.8:2", got.Address)
	assert.Equal(t, m.Id, got.Id)
	assert.Equal(t, "1.2.3.4:1", m.Address, "WithAddress must not mutate the receiver")
}

func TestHealthString(t *testing.T) {
	assert.Equal(t, "Alive", Alive.String())
	assert.Equal(t, "Suspect", Suspect.String())
	assert.Equal(t, "Confirmed", Confirmed.String())
}
