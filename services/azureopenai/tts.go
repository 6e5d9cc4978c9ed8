package azureopenai

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"voicechat/config"
)

// Synthesizer calls the speech deployment and returns MP3 audio.
type Synthesizer struct {
	client *openai.Client
	creds  config.Credentials
}

// NewSynthesizer returns a Synthesizer using the given credentials.
func NewSynthesizer(creds config.Credentials) *Synthesizer {
	return &Synthesizer{client: newClient(creds), creds: creds}
}

// Synthesize renders text with the selected voice and returns the full
// audio payload. The response is read to completion; no streaming.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.creds.Deployment),
		Input: text,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return nil, fmt.Errorf("azureopenai: speech synthesis: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("azureopenai: read synthesized audio: %w", err)
	}
	return audio, nil
}

// Credentials returns the resolved connection details.
func (s *Synthesizer) Credentials() config.Credentials {
	return s.creds
}
