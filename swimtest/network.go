// Package swimtest provides an in-process multi-server test harness, a Go
// translation of the original Rust implementation's
// tests/common/net.rs SwimNet, for exercising end-to-end convergence and
// failure scenarios.
package swimtest

import (
	"fmt"
	"time"

	swim "github.com/leesd556/swimfd"
)

// Network is a set of Servers bound on consecutive local ports, optionally
// fully meshed and edge-blacklisted, used to drive end-to-end convergence
// and failure scenarios.
type Network struct {
	Servers []*swim.Server
}

// NewNetwork starts count servers on 127.0.0.1, each on its own ephemeral
// port, and launches their Receiver/Prober loops.
func NewNetwork(count int) (*Network, error) {
	servers := make([]*swim.Server, 0, count)
	for i := 0; i < count; i++ {
		server, err := swim.NewServer(swim.Config{BindAddress: "127.0.0.1:0"}, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("starting server %d: %w", i, err)
		}
		servers = append(servers, server)
	}
	net := &Network{Servers: servers}
	for _, s := range servers {
		s.Start()
	}
	return net, nil
}

// Mesh populates every server's member list with every other server's
// self member, marked Alive.
func (n *Network) Mesh() {
	for _, a := range n.Servers {
		for _, b := range n.Servers {
			if a == b {
				continue
			}
			a.MemberList().Insert(b.Self(), swim.Alive)
		}
	}
}

// Blacklist makes n.Servers[from] drop datagrams from n.Servers[to]'s
// address (and skip probing it).
func (n *Network) Blacklist(from, to int) {
	n.Servers[from].AddToBlacklist(n.Servers[to].Self().Address)
}

// HealthOf reports what n.Servers[from] currently believes n.Servers[to]'s
// health is.
func (n *Network) HealthOf(from, to int) swim.Health {
	health, _ := n.Servers[from].MemberList().HealthOf(n.Servers[to].Self().Id)
	return health
}

// NetworkHealthOf reports what every other server currently believes
// n.Servers[toCheck]'s health is.
func (n *Network) NetworkHealthOf(toCheck int) []swim.Health {
	out := make([]swim.Health, 0, len(n.Servers)-1)
	for i := range n.Servers {
		if i == toCheck {
			continue
		}
		out = append(out, n.HealthOf(i, toCheck))
	}
	return out
}

// MaxTimeout is a deliberately pessimistic upper bound on how long a
// health change can take to propagate: every member needs enough time to
// probe every other member, three protocol periods over.
func (n *Network) MaxTimeout() time.Duration {
	return swim.DefaultTiming().ProtocolPeriod() * time.Duration(len(n.Servers)) * 3
}

// WaitForHealthOf polls until n.Servers[from] sees n.Servers[to] as health,
// or MaxTimeout elapses (returning false).
func (n *Network) WaitForHealthOf(from, to int, health swim.Health) bool {
	deadline := time.Now().Add(n.MaxTimeout())
	for time.Now().Before(deadline) {
		if n.HealthOf(from, to) == health {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return n.HealthOf(from, to) == health
}

// WaitForNetworkHealthOf polls until every other server sees
// n.Servers[toCheck] as health, or MaxTimeout elapses (returning false).
func (n *Network) WaitForNetworkHealthOf(toCheck int, health swim.Health) bool {
	deadline := time.Now().Add(n.MaxTimeout())
	for time.Now().Before(deadline) {
		if allEqual(n.NetworkHealthOf(toCheck), health) {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return allEqual(n.NetworkHealthOf(toCheck), health)
}

func allEqual(got []swim.Health, want swim.Health) bool {
	for _, h := range got {
		if h != want {
			return false
		}
	}
	return true
}

// WaitProtocolPeriod sleeps out one full protocol period.
func (n *Network) WaitProtocolPeriod() {
	time.Sleep(swim.DefaultTiming().ProtocolPeriod())
}
