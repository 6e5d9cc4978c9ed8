// Package protocol defines the WebSocket messages exchanged between
// the browser page and the agent. Every message is a JSON envelope of
// {type, payload}; recorded audio follows its header as a separate
// binary frame.
package protocol

import "encoding/json"

// MessageType enumerates all message types.
type MessageType string

const (
	// Client -> agent
	MsgAudio           MessageType = "audio"
	MsgSavePreferences MessageType = "save_preferences"
	MsgSetVoice        MessageType = "set_voice"
	MsgSetAutoLanguage MessageType = "set_auto_language"
	MsgPlayback        MessageType = "playback"

	// Agent -> client
	MsgTranscript       MessageType = "transcript"
	MsgDetectedLanguage MessageType = "detected_language"
	MsgReply            MessageType = "reply"
	MsgReplyAudio       MessageType = "reply_audio"
	MsgTurnError        MessageType = "turn_error"
	MsgConfigError      MessageType = "config_error"
	MsgPreferencesSaved MessageType = "preferences_saved"
)

// Envelope is the outer JSON wrapper for all WebSocket messages.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Client -> agent payloads ---

// AudioHeader announces one recording; the WAV bytes arrive in the next
// binary frame.
type AudioHeader struct {
	Size int `json:"size"`
}

// SavePreferencesPayload carries the preference form on an explicit
// save action.
type SavePreferencesPayload struct {
	PreferredName string `json:"preferred_name"`
	SpeakStyle    string `json:"speak_style"`
}

// SetVoicePayload selects the TTS voice for the session.
type SetVoicePayload struct {
	Voice string `json:"voice"`
}

// SetAutoLanguagePayload toggles Hindi/English auto-detection.
type SetAutoLanguagePayload struct {
	Enabled bool `json:"enabled"`
}

// PlaybackPayload reports an audio element event from the client.
// Position and Duration are in seconds and only meaningful for the
// "paused" event.
type PlaybackPayload struct {
	Event    string  `json:"event"` // "playing", "ended", "paused"
	Position float64 `json:"position,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// --- Agent -> client payloads ---

// TranscriptPayload carries the user's transcribed speech.
type TranscriptPayload struct {
	TurnID string `json:"turn_id"`
	Text   string `json:"text"`
}

// DetectedLanguagePayload reports the language chosen for the reply.
type DetectedLanguagePayload struct {
	TurnID   string `json:"turn_id"`
	Language string `json:"language"` // "hi" or "en"
	Display  string `json:"display"`  // "Hindi" or "English"
}

// ReplyPayload carries the assistant's reply text.
type ReplyPayload struct {
	TurnID string `json:"turn_id"`
	Text   string `json:"text"`
}

// ReplyAudioPayload carries the synthesized reply as base64 MP3 with a
// display label for the speaking indicator.
type ReplyAudioPayload struct {
	TurnID string `json:"turn_id"`
	Audio  string `json:"audio"` // base64 MP3
	Label  string `json:"label"`
}

// TurnErrorPayload reports a failed or degraded turn stage.
type TurnErrorPayload struct {
	TurnID      string            `json:"turn_id"`
	Stage       string            `json:"stage"`
	Fatal       bool              `json:"fatal"`
	Message     string            `json:"message"`
	Hint        string            `json:"hint,omitempty"`
	Diagnostics map[string]string `json:"diagnostics,omitempty"`
}

// ConfigErrorPayload lists the unresolved configuration fields per
// capability; sent once on connect when the gate fails.
type ConfigErrorPayload struct {
	Missing map[string][]string `json:"missing"`
}

// PreferencesSavedPayload acknowledges a save action with the record
// now in effect.
type PreferencesSavedPayload struct {
	PreferredName string `json:"preferred_name"`
	SpeakStyle    string `json:"speak_style"`
}
