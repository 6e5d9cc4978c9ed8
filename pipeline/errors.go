package pipeline

import (
	"fmt"

	"voicechat/config"
	"voicechat/core"
)

// Stage names the pipeline step an error belongs to.
type Stage string

const (
	StageTranscription Stage = "transcription"
	StageReply         Stage = "reply"
	StageSynthesis     Stage = "synthesis"
)

// StageError is a turn failure with enough context to show the user
// something actionable. Message is already truncated for display.
type StageError struct {
	Stage   Stage
	Message string
	// Hint points the user at the likely cause, set for stages where
	// one cause dominates (deployment name mismatches for STT).
	Hint string
	// Diagnostics carries the resolved connection details for the
	// failed capability, shown for synthesis failures.
	Diagnostics map[string]string
	err         error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.err
}

// Fatal reports whether this error aborted the turn. Synthesis errors
// degrade the turn instead.
func (e *StageError) Fatal() bool {
	return e.Stage != StageSynthesis
}

func transcriptionError(err error, creds config.Credentials) *StageError {
	return &StageError{
		Stage:   StageTranscription,
		Message: core.Truncate(err.Error()),
		Hint:    "Speech-to-text failed. Check that your Whisper deployment name and endpoint match. Using endpoint: " + orNotSet(creds.Endpoint),
		err:     err,
	}
}

func replyError(err error) *StageError {
	return &StageError{
		Stage:   StageReply,
		Message: core.Truncate(err.Error()),
		err:     err,
	}
}

func synthesisError(err error, creds config.Credentials) *StageError {
	return &StageError{
		Stage:   StageSynthesis,
		Message: core.Truncate(err.Error()),
		Hint:    "Text-to-speech is not available yet. You can read the response instead.",
		Diagnostics: map[string]string{
			"endpoint":    orNotSet(creds.Endpoint),
			"api_version": orNotSet(creds.APIVersion),
			"deployment":  orNotSet(creds.Deployment),
		},
		err: err,
	}
}

func orNotSet(v string) string {
	if v == "" {
		return "Not set"
	}
	return v
}
