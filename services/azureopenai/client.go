// Package azureopenai adapts the Azure OpenAI REST surface to the
// three capability interfaces the turn pipeline consumes. Each adapter
// owns its own client so the capabilities can point at different
// endpoints and API versions.
package azureopenai

import (
	"github.com/sashabaranov/go-openai"

	"voicechat/config"
)

// newClient builds a go-openai client for one capability's resolved
// credentials.
func newClient(creds config.Credentials) *openai.Client {
	cfg := openai.DefaultAzureConfig(creds.APIKey, creds.Endpoint)
	if creds.APIVersion != "" {
		cfg.APIVersion = creds.APIVersion
	}
	// Deployment names are passed through verbatim; the default Azure
	// mapper would strip characters like ".".
	cfg.AzureModelMapperFunc = func(model string) string { return model }
	return openai.NewClientWithConfig(cfg)
}
