package anim

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

const (
	// CounterDuration is how long a counter takes to reach its target.
	CounterDuration = 2000
	// frameMillis is the assumed frame length used to size each increment.
	frameMillis = 16
	// VisibilityThreshold is the visible fraction that starts a counter.
	VisibilityThreshold = 0.5
)

// Counter animates a displayed number from 0 up to Target and then shows "<Target>+".
type Counter struct {
	ID     string
	Target int

	mu      sync.Mutex
	current float64
	display string
	done    bool
	render  func(id, text string)
}

// NewCounter creates a counter. render receives every displayed value; it may be nil.
func NewCounter(id string, target int, render func(id, text string)) *Counter {
	return &Counter{ID: id, Target: target, display: "0", render: render}
}

// ParseTarget reads a counter target the way it is declared on the page: the
// data-target attribute when present, else the element text. Leading digits win,
// so "1250 طالب" gives 1250. Unparsable input gives 0.
func ParseTarget(dataTarget, text string) int {
	src := strings.TrimSpace(dataTarget)
	if src == "" {
		src = strings.TrimSpace(text)
	}
	end := 0
	for end < len(src) && (src[end] >= '0' && src[end] <= '9' || end == 0 && src[end] == '-') {
		end++
	}
	n, err := strconv.Atoi(src[:end])
	if err != nil {
		return 0
	}
	return n
}

// FinalText is what a finished counter shows.
func FinalText(target int) string {
	return strconv.Itoa(target) + "+"
}

// Start runs the first frame immediately and schedules the rest.
func (c *Counter) Start(s FrameScheduler) {
	step := float64(c.Target) / (CounterDuration / frameMillis)
	var frame func()
	frame = func() {
		c.mu.Lock()
		c.current += step
		var text string
		finished := !(c.current < float64(c.Target))
		if finished {
			text = FinalText(c.Target)
			c.done = true
		} else {
			text = strconv.Itoa(int(math.Floor(c.current)))
		}
		c.display = text
		c.mu.Unlock()

		if c.render != nil {
			c.render(c.ID, text)
		}
		if !finished {
			s.RequestFrame(frame)
		}
	}
	frame()
}

// Display returns the value currently shown.
func (c *Counter) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

// Done reports whether the counter has reached its target.
func (c *Counter) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Observer starts counters the first time they become sufficiently visible and
// then stops watching them for good.
type Observer struct {
	mu        sync.Mutex
	scheduler FrameScheduler
	watched   map[string]*Counter
	started   int
}

// NewObserver creates an Observer animating on s.
func NewObserver(s FrameScheduler) *Observer {
	return &Observer{scheduler: s, watched: make(map[string]*Counter)}
}

// Observe starts watching c.
func (o *Observer) Observe(c *Counter) {
	o.mu.Lock()
	o.watched[c.ID] = c
	o.mu.Unlock()
}

// Visibility reports the visible fraction of a watched element.
func (o *Observer) Visibility(id string, ratio float64) {
	if ratio < VisibilityThreshold {
		return
	}
	o.mu.Lock()
	c, ok := o.watched[id]
	if ok {
		delete(o.watched, id)
		o.started++
	}
	o.mu.Unlock()

	if ok {
		c.Start(o.scheduler)
	}
}

// Watching reports whether the element is still observed.
func (o *Observer) Watching(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.watched[id]
	return ok
}

// Started returns how many counters this observer has triggered.
func (o *Observer) Started() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.started
}
