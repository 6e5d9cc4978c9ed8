// Package playback mirrors the client's audio element into a two-state
// speaking indicator. The indicator is a passive reflection of playback
// events, it never controls the audio.
package playback

import (
	"sync"
	"time"
)

// State is the indicator visibility.
type State string

const (
	Hidden  State = "hidden"
	Visible State = "visible"
)

// DefaultEpsilon is how close to the end of the clip a pause is treated
// as completion. A pause exactly at the end is indistinguishable from
// the ended event in the underlying audio element.
const DefaultEpsilon = 250 * time.Millisecond

// Indicator tracks whether the speaking cue should be shown.
// Playback events arrive asynchronously from the transport, so state
// access is locked.
type Indicator struct {
	mu      sync.Mutex
	state   State
	Epsilon time.Duration
}

// NewIndicator returns a hidden indicator with DefaultEpsilon.
func NewIndicator() *Indicator {
	return &Indicator{state: Hidden, Epsilon: DefaultEpsilon}
}

// State returns the current visibility.
func (i *Indicator) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// HandlePlaying records that the audio element started or resumed.
func (i *Indicator) HandlePlaying() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state = Visible
}

// HandleEnded records that playback completed.
func (i *Indicator) HandleEnded() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state = Hidden
}

// HandlePaused records a pause at position within a clip of the given
// duration. A pause within Epsilon of the end is treated as ended;
// any other pause leaves the indicator as it is.
func (i *Indicator) HandlePaused(position, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if duration <= 0 {
		return
	}
	if duration-position <= i.epsilon() {
		i.state = Hidden
	}
}

func (i *Indicator) epsilon() time.Duration {
	if i.Epsilon > 0 {
		return i.Epsilon
	}
	return DefaultEpsilon
}
