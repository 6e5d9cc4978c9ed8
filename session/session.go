// Package session holds the mutable per-session state: user
// preferences, the selected TTS voice, the language auto-detect toggle
// and the playback indicator. A session has a single owner (one
// connected client); turns read this state sequentially, so only the
// playback indicator needs its own locking.
package session

import (
	"voicechat/core"
	"voicechat/memory"
	"voicechat/playback"
)

// DefaultVoice is the TTS voice used until the user picks another.
const DefaultVoice = "nova"

// Voices are the selectable TTS voices.
var Voices = []string{"nova", "alloy", "echo", "fable", "onyx", "shimmer"}

// ValidVoice reports whether v is a selectable voice.
func ValidVoice(v string) bool {
	for _, voice := range Voices {
		if voice == v {
			return true
		}
	}
	return false
}

// Session is the state for one connected client.
type Session struct {
	store  *memory.Store
	logger *core.Logger

	prefs              memory.Preferences
	voice              string
	autoDetectLanguage bool

	// Indicator mirrors the client's playback state.
	Indicator *playback.Indicator
}

// New loads stored preferences and returns a session with defaults:
// the nova voice and language auto-detection on.
func New(store *memory.Store, logger *core.Logger) *Session {
	if logger == nil {
		logger = core.GetLogger()
	}
	return &Session{
		store:              store,
		logger:             logger.With(map[string]interface{}{"component": "session"}),
		prefs:              store.Load(),
		voice:              DefaultVoice,
		autoDetectLanguage: true,
		Indicator:          playback.NewIndicator(),
	}
}

// Preferences returns the current preference record.
func (s *Session) Preferences() memory.Preferences {
	return s.prefs
}

// SavePreferences updates the session record and persists it. Storage
// failures are logged and swallowed: losing a preference write must
// never interrupt the conversation.
func (s *Session) SavePreferences(p memory.Preferences) {
	p.SpeakStyle = p.SpeakStyle.Normalize()
	s.prefs = p
	if err := s.store.Save(p); err != nil {
		s.logger.Warn("preference save failed, continuing with in-memory copy", "error", err.Error())
	}
}

// Voice returns the selected TTS voice.
func (s *Session) Voice() string {
	return s.voice
}

// SetVoice selects a TTS voice for the rest of the session. Unknown
// voices are ignored.
func (s *Session) SetVoice(v string) {
	if !ValidVoice(v) {
		s.logger.Warn("ignoring unknown voice", "voice", v)
		return
	}
	s.voice = v
}

// AutoDetectLanguage returns the language auto-detect toggle.
func (s *Session) AutoDetectLanguage() bool {
	return s.autoDetectLanguage
}

// SetAutoDetectLanguage sets the language auto-detect toggle.
func (s *Session) SetAutoDetectLanguage(on bool) {
	s.autoDetectLanguage = on
}
