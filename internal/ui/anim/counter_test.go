package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterReachesTarget(t *testing.T) {
	sched := &ManualScheduler{}
	var frames []string
	c := NewCounter("students", 120, func(_, text string) { frames = append(frames, text) })

	c.Start(sched)
	steps := sched.Drain(1000)

	require.True(t, c.Done())
	assert.Equal(t, "120+", c.Display())
	assert.Equal(t, "0", frames[0], "first frame shows floor(0.96)")
	assert.Equal(t, "120+", frames[len(frames)-1])
	// 2000ms at 16ms per frame is 125 frames, give or take float rounding.
	assert.InDelta(t, 125, steps+1, 1)
}

func TestCounterValuesNeverDecrease(t *testing.T) {
	sched := &ManualScheduler{}
	last := -1
	c := NewCounter("years", 223, func(_, text string) {
		if text == "223+" {
			return
		}
		n := ParseTarget("", text)
		assert.GreaterOrEqual(t, n, last)
		last = n
	})
	c.Start(sched)
	sched.Drain(1000)
	assert.True(t, c.Done())
}

func TestObserverTriggersOnce(t *testing.T) {
	sched := &ManualScheduler{}
	obs := NewObserver(sched)
	c := NewCounter("graduates", 120, nil)
	obs.Observe(c)

	obs.Visibility("graduates", 0.3)
	assert.True(t, obs.Watching("graduates"))
	assert.Equal(t, "0", c.Display())

	obs.Visibility("graduates", 0.5)
	assert.False(t, obs.Watching("graduates"))
	sched.Drain(1000)
	assert.Equal(t, "120+", c.Display())

	obs.Visibility("graduates", 1.0)
	assert.False(t, sched.Step(), "no new frames after the counter finished")
	assert.Equal(t, 1, obs.Started())
}

func TestParseTarget(t *testing.T) {
	assert.Equal(t, 1250, ParseTarget("1250", "0"))
	assert.Equal(t, 340, ParseTarget("", "340"))
	assert.Equal(t, 15, ParseTarget("", "15 أستاذ"))
	assert.Equal(t, 0, ParseTarget("", "—"))
}

func TestFinalText(t *testing.T) {
	assert.Equal(t, "120+", FinalText(120))
	assert.Equal(t, "0+", FinalText(0))
}
