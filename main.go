package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"voicechat/config"
	"voicechat/core"
	"voicechat/memory"
	"voicechat/pipeline"
	"voicechat/services/azureopenai"
	"voicechat/transports/websocket"
)

func main() {
	logger := core.GetLogger()

	if err := godotenv.Load(".env"); err != nil {
		logger.Debug("no .env file found, reading process environment only")
	}

	resolver := config.NewResolver(nil)
	gate := resolver.Gate()

	var runner websocket.TurnRunner
	if gate.OK() {
		sttCreds := resolver.Resolve(config.CapabilityTranscription)
		chatCreds := resolver.Resolve(config.CapabilityChat)
		ttsCreds := resolver.Resolve(config.CapabilitySpeech)

		runner = pipeline.New(pipeline.Deps{
			Transcriber: azureopenai.NewTranscriber(sttCreds),
			Responder:   azureopenai.NewResponder(chatCreds),
			Synthesizer: azureopenai.NewSynthesizer(ttsCreds),
			STTCreds:    sttCreds,
			TTSCreds:    ttsCreds,
			Logger:      logger,
		})
		logger.Info("capabilities configured",
			"chat_deployment", chatCreds.Deployment,
			"stt_deployment", sttCreds.Deployment,
			"tts_deployment", ttsCreds.Deployment)
	} else {
		// Serve anyway so the page can show which fields are missing;
		// no turn will run until they are set.
		for capability, fields := range gate {
			logger.Warn("missing Azure OpenAI configuration",
				"capability", string(capability),
				"fields", fields)
		}
	}

	store := memory.NewStore(getEnv("MEMORY_PATH", memory.DefaultPath))

	srv := websocket.NewServer(websocket.Options{
		Runner: runner,
		Gate:   gate,
		Store:  store,
		Logger: logger,
	})
	mux := http.NewServeMux()
	srv.Routes(mux)

	addr := getEnv("HTTP_ADDRESS", ":8080")
	logger.Info("voice chat agent listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("http server stopped", "error", err.Error())
	}
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
