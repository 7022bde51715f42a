package swim

import (
	"math/rand"
	"sync"
)

// pingreqTargets is K, the indirect-probe fan-out: up to this many helpers
// are recruited for an indirect probe.
const pingreqTargets = 5

// MemberList maps member id to (Member, Health). Every id present in the
// identity map has a Health entry, and vice versa; insertion is
// last-writer-wins; callers order updates (see prober.go and receiver.go).
type MemberList struct {
	mu      sync.RWMutex
	members map[string]Member
	health  map[string]Health
}

// NewMemberList returns an empty MemberList.
func NewMemberList() *MemberList {
	return &MemberList{
		members: make(map[string]Member),
		health:  make(map[string]Health),
	}
}

// Insert upserts both maps keyed by member.Id, returning the prior Member
// if one existed.
func (l *MemberList) Insert(member Member, health Health) (prior Member, existed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prior, existed = l.members[member.Id]
	l.members[member.Id] = member
	l.health[member.Id] = health
	return prior, existed
}

// InsertHealth upserts the health label only, used by the prober for
// Suspect/Confirmed transitions.
func (l *MemberList) InsertHealth(id string, health Health) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.health[id] = health
}

// HealthOf is a read-only lookup.
func (l *MemberList) HealthOf(id string) (Health, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h, ok := l.health[id]
	return h, ok
}

// Get returns the Member record for id, if any.
func (l *MemberList) Get(id string) (Member, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.members[id]
	return m, ok
}

// Len reports the number of members currently tracked.
func (l *MemberList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.members)
}

// Members returns a read-only snapshot of every tracked Member, in
// unspecified order.
func (l *MemberList) Members() []Member {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Member, 0, len(l.members))
	for _, m := range l.members {
		out = append(out, m)
	}
	return out
}

// CheckList returns a cloned, uniformly-shuffled sequence of all members.
// Two successive calls on a list of size >= 2 produce distinct orderings
// with overwhelming probability.
func (l *MemberList) CheckList() []Member {
	members := l.Members()
	rand.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
	return members
}

// PingreqTargets returns up to pingreqTargets members sampled without
// replacement from a uniform shuffle of the list, excluding both from.Id
// and target.Id. If fewer than pingreqTargets eligible members exist, all
// of them are returned (possibly none).
func (l *MemberList) PingreqTargets(from, target Member) []Member {
	candidates := l.CheckList()
	out := make([]Member, 0, pingreqTargets)
	for _, m := range candidates {
		if m.Id == from.Id || m.Id == target.Id {
			continue
		}
		out = append(out, m)
		if len(out) == pingreqTargets {
			break
		}
	}
	return out
}
