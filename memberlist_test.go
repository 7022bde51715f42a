package swim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func populatedMemberList(size int) *MemberList {
	ml := NewMemberList()
	for i := 0; i < size; i++ {
		ml.Insert(NewMember(fmt.Sprintf("127.0.0.1:%d", 10000+i)), Alive)
	}
	return ml
}

func TestMemberListNew(t *testing.T) {
	ml := NewMemberList()
	assert.Equal(t, 0, ml.Len())
}

func TestMemberListInsert(t *testing.T) {
	ml := populatedMemberList(4)
	assert.Equal(t, 4, ml.Len())
}

func TestMemberListInsertLastWriterWins(t *testing.T) {
	ml := NewMemberList()
	m := NewMember("127.0.0.1:1")
	ml.Insert(m, Alive)

	updated := m
	updated.Incarnation = 5
	ml.Insert(updated, Suspect)

	got, ok := ml.Get(m.Id)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), got.Incarnation)

	health, ok := ml.HealthOf(m.Id)
	assert.True(t, ok)
	assert.Equal(t, Suspect, health)
}

func TestMemberListHealthOf(t *testing.T) {
	ml := populatedMemberList(1)
	for _, m := range ml.Members() {
		health, ok := ml.HealthOf(m.Id)
		assert.True(t, ok)
		assert.Equal(t, Alive, health)
	}
}

func TestMemberListCheckListIsPermutation(t *testing.T) {
	ml := populatedMemberList(1000)
	a := ml.CheckList()
	b := ml.CheckList()

	assert.Len(t, a, 1000)
	assert.Len(t, b, 1000)
	assert.NotEqual(t, a, b)
	assert.ElementsMatch(t, a, b)
}

func TestMemberListPingreqTargetsSizeAndExclusion(t *testing.T) {
	ml := populatedMemberList(10)
	members := ml.Members()
	from, target := members[0], members[1]

	targets := ml.PingreqTargets(from, target)
	assert.Len(t, targets, pingreqTargets)
	for _, m := range targets {
		assert.NotEqual(t, from.Id, m.Id)
		assert.NotEqual(t, target.Id, m.Id)
	}
}

func TestMemberListPingreqTargetsMinimumViableSize(t *testing.T) {
	ml := populatedMemberList(3)
	members := ml.Members()
	from, target := members[0], members[1]

	targets := ml.PingreqTargets(from, target)
	assert.Len(t, targets, 1)
}

func TestMemberListPingreqTargetsFloorsAtZero(t *testing.T) {
	ml := populatedMemberList(2)
	members := ml.Members()
	from, target := members[0], members[1]

	targets := ml.PingreqTargets(from, target)
	assert.Len(t, targets, 0)
}
