// Package pipeline sequences one conversation turn: transcription,
// language detection, prompt composition, reply generation, speech
// synthesis. The three external calls run strictly in order because
// each consumes the previous step's output; a turn runs to completion
// or to its first hard failure. Transcription and reply failures abort
// the turn; synthesis failure only degrades it, the reply text is
// still delivered.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"voicechat/config"
	"voicechat/core"
	"voicechat/langdetect"
	"voicechat/memory"
	"voicechat/prompt"
)

// Transcriber converts one recording to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Responder generates the assistant reply for a system prompt and the
// user's transcript.
type Responder interface {
	Respond(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Synthesizer renders reply text as audio with the given voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// State is where a turn currently stands, or how it finished.
type State string

const (
	StateIdle              State = "idle"
	StateTranscribing      State = "transcribing"
	StateDetectingLanguage State = "detecting_language"
	StateComposing         State = "composing"
	StateGeneratingReply   State = "generating_reply"
	StateSynthesizing      State = "synthesizing"
	StateDone              State = "done"
	StateFailedSTT         State = "failed_stt"
	StateFailedLLM         State = "failed_llm"
	StateDegradedTTS       State = "degraded_tts"
)

// Turn is the ephemeral aggregate for one recording. It is not
// retained once the result has been delivered; no conversation history
// is kept across turns.
type Turn struct {
	ID         string
	State      State
	Transcript string
	Language   langdetect.Language
	Prompt     string
	ReplyText  string
	ReplyAudio []byte
	Err        *StageError
}

// Succeeded reports whether the text exchange completed, including
// degraded turns where only synthesis failed.
func (t *Turn) Succeeded() bool {
	return t.State == StateDone || t.State == StateDegradedTTS
}

// Input carries everything one turn needs from the session.
type Input struct {
	Audio              []byte
	Preferences        memory.Preferences
	Voice              string
	AutoDetectLanguage bool
}

// Deps are the injected capabilities plus the resolved credentials used
// for user-facing diagnostics. Credentials are carried separately from
// the capability implementations so fakes in tests need no config.
type Deps struct {
	Transcriber Transcriber
	Responder   Responder
	Synthesizer Synthesizer
	STTCreds    config.Credentials
	TTSCreds    config.Credentials
	Logger      *core.Logger
}

// Pipeline runs conversation turns. One instance serves a session;
// turns are sequential, never concurrent.
type Pipeline struct {
	deps   Deps
	logger *core.Logger
}

// New returns a Pipeline over the given dependencies.
func New(deps Deps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = core.GetLogger()
	}
	return &Pipeline{deps: deps, logger: logger.With(map[string]interface{}{"component": "pipeline"})}
}

// Run processes one recording and returns the finished turn. The
// returned turn always carries a terminal state; errors are recorded on
// the turn rather than returned, because a degraded turn is still a
// deliverable result.
func (p *Pipeline) Run(ctx context.Context, in Input) *Turn {
	turn := &Turn{ID: uuid.NewString(), State: StateIdle}
	log := p.logger.With(map[string]interface{}{"turn": turn.ID})

	// Step 1: speech to text.
	turn.State = StateTranscribing
	transcript, err := p.deps.Transcriber.Transcribe(ctx, in.Audio)
	if err != nil {
		turn.State = StateFailedSTT
		turn.Err = transcriptionError(err, p.deps.STTCreds)
		log.Error("transcription failed", "error", core.Truncate(err.Error()))
		return turn
	}
	turn.Transcript = transcript

	// Step 2: language detection, unless pinned to English.
	turn.State = StateDetectingLanguage
	if in.AutoDetectLanguage {
		turn.Language = langdetect.Detect(transcript)
	} else {
		turn.Language = langdetect.LanguageEnglish
	}

	// Step 3: system prompt from language and preferences.
	turn.State = StateComposing
	turn.Prompt = prompt.Compose(turn.Language, in.Preferences)

	// Step 4: reply generation.
	turn.State = StateGeneratingReply
	reply, err := p.deps.Responder.Respond(ctx, turn.Prompt, transcript)
	if err != nil {
		turn.State = StateFailedLLM
		turn.Err = replyError(err)
		log.Error("reply generation failed", "error", core.Truncate(err.Error()))
		return turn
	}
	turn.ReplyText = reply

	// Step 5: speech synthesis. Failure here is non-fatal: the reply
	// text has already been produced and stays on the turn.
	turn.State = StateSynthesizing
	audio, err := p.deps.Synthesizer.Synthesize(ctx, reply, in.Voice)
	if err != nil {
		turn.State = StateDegradedTTS
		turn.Err = synthesisError(err, p.deps.TTSCreds)
		log.Warn("speech synthesis failed, delivering text only",
			"error", core.Truncate(err.Error()),
			"endpoint", p.deps.TTSCreds.Endpoint,
			"deployment", p.deps.TTSCreds.Deployment)
		return turn
	}
	turn.ReplyAudio = audio

	turn.State = StateDone
	log.Info("turn complete",
		"language", turn.Language,
		"transcript_len", len(turn.Transcript),
		"reply_len", len(turn.ReplyText),
		"audio_bytes", len(turn.ReplyAudio))
	return turn
}
