package azureopenai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"voicechat/config"
)

// Transcriber calls the Whisper deployment.
type Transcriber struct {
	client *openai.Client
	creds  config.Credentials
}

// NewTranscriber returns a Transcriber using the given credentials.
func NewTranscriber(creds config.Credentials) *Transcriber {
	return &Transcriber{client: newClient(creds), creds: creds}
}

// Transcribe submits one recording and returns the transcript text.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.creds.Deployment,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("azureopenai: transcription: %w", err)
	}
	return resp.Text, nil
}

// Credentials returns the resolved connection details, used for
// error diagnostics.
func (t *Transcriber) Credentials() config.Credentials {
	return t.creds
}
