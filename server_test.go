package swim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(Config{BindAddress: "127.0.0.1:0"}, nil, nil)
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	server := startTestServer(t)
	assert.NotEmpty(t, server.Self().Id)
	assert.False(t, server.Paused())
	assert.Equal(t, int64(0), server.Rounds())
}

func TestNewServerBadAddress(t *testing.T) {
	_, err := NewServer(Config{BindAddress: "not-an-address"}, nil, nil)
	assert.Error(t, err)
}

func TestServerPauseUnpause(t *testing.T) {
	server := startTestServer(t)
	assert.False(t, server.Paused())
	server.Pause()
	assert.True(t, server.Paused())
	server.Unpause()
	assert.False(t, server.Paused())
}

func TestServerUpdateRound(t *testing.T) {
	server := startTestServer(t)
	server.UpdateRound()
	server.UpdateRound()
	assert.Equal(t, int64(2), server.Rounds())
}

func TestServerUpdateRoundWrapsOnOverflow(t *testing.T) {
	server := startTestServer(t)
	server.rounds = int64(1<<63 - 1)
	server.UpdateRound()
	assert.Equal(t, int64(0), server.Rounds())
}

func TestServerBlacklist(t *testing.T) {
	server := startTestServer(t)
	assert.False(t, server.CheckBlacklist("10.0.0.1:1"))
	server.AddToBlacklist("10.0.0.1:1")
	assert.True(t, server.CheckBlacklist("10.0.0.1:1"))
}

func TestServerPersistentMembersSeeded(t *testing.T) {
	persistent := NewMember("127.0.0.1:9999")
	server, err := NewServer(Config{
		BindAddress: "127.0.0.1:0",
		Persistent:  []Member{persistent},
	}, nil, nil)
	require.NoError(t, err)

	health, ok := server.MemberList().HealthOf(persistent.Id)
	assert.True(t, ok)
	assert.Equal(t, Alive, health)

	got, _ := server.MemberList().Get(persistent.Id)
	assert.True(t, got.Persistent)
}
