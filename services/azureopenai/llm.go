package azureopenai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"voicechat/config"
)

// Responder calls the chat completion deployment.
type Responder struct {
	client *openai.Client
	creds  config.Credentials
}

// NewResponder returns a Responder using the given credentials.
func NewResponder(creds config.Credentials) *Responder {
	return &Responder{client: newClient(creds), creds: creds}
}

// Respond sends a two-message exchange (system instruction plus the
// user's transcript) and returns the assistant's reply text.
func (r *Responder) Respond(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.creds.Deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("azureopenai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("azureopenai: chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Credentials returns the resolved connection details.
func (r *Responder) Credentials() config.Credentials {
	return r.creds
}
