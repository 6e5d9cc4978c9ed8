package playback

import (
	"testing"
	"time"
)

func TestIndicator_StartsHidden(t *testing.T) {
	if got := NewIndicator().State(); got != Hidden {
		t.Errorf("new indicator should be hidden, got %v", got)
	}
}

func TestIndicator_PlayingThenEnded(t *testing.T) {
	i := NewIndicator()
	i.HandlePlaying()
	if i.State() != Visible {
		t.Fatal("expected visible after playing event")
	}
	i.HandleEnded()
	if i.State() != Hidden {
		t.Fatal("expected hidden after ended event")
	}
}

func TestIndicator_PausedNearEnd(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		want     State
	}{
		{"paused mid clip stays visible", 2 * time.Second, 10 * time.Second, Visible},
		{"paused within epsilon hides", 9800 * time.Millisecond, 10 * time.Second, Hidden},
		{"paused exactly at epsilon hides", 9750 * time.Millisecond, 10 * time.Second, Hidden},
		{"paused just outside epsilon stays", 9749 * time.Millisecond, 10 * time.Second, Visible},
		{"paused at clip end hides", 10 * time.Second, 10 * time.Second, Hidden},
		{"zero duration ignored", 0, 0, Visible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewIndicator()
			i.HandlePlaying()
			i.HandlePaused(tt.position, tt.duration)
			if got := i.State(); got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndicator_CustomEpsilon(t *testing.T) {
	i := NewIndicator()
	i.Epsilon = time.Second
	i.HandlePlaying()
	i.HandlePaused(9200*time.Millisecond, 10*time.Second)
	if i.State() != Hidden {
		t.Error("expected custom epsilon to treat pause as ended")
	}
}

func TestIndicator_PausedDoesNotShow(t *testing.T) {
	// A pause near the end while already hidden must not reveal the cue.
	i := NewIndicator()
	i.HandlePaused(10*time.Second, 10*time.Second)
	if i.State() != Hidden {
		t.Error("pause must never make the indicator visible")
	}
}
