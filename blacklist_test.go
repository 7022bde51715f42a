package swim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistAddContains(t *testing.T) {
	b := NewBlacklist()
	assert.False(t, b.Contains("1.2.3.4:5"))
	b.Add("1.2.3.4:5")
	assert.True(t, b.Contains("1.2.3.4:5"))
	assert.False(t, b.Contains("1.2.3.4:6"))
}

func TestTimingDefaults(t *testing.T) {
	timing := DefaultTiming()
	assert.EqualValues(t, DefaultPingMS, timing.PingMS)
	assert.EqualValues(t, DefaultPingReqMS, timing.PingReqMS)
	assert.Equal(t, int64(2100), timing.PingMS+timing.PingReqMS)
}

func TestTimingProtocolPeriodIsSumOfPhases(t *testing.T) {
	timing := Timing{PingMS: 100, PingReqMS: 200}
	assert.Equal(t, int64(300), timing.ProtocolPeriod().Milliseconds())
}
