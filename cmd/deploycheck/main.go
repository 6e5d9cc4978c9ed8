// Command deploycheck probes the configured Azure OpenAI deployments
// once each and reports which respond. Run it after editing .env to
// confirm the chat, Whisper and TTS deployment names and API versions
// line up before starting the agent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"voicechat/config"
	"voicechat/core"
	"voicechat/services/azureopenai"
)

func main() {
	var timeout time.Duration
	var ttsMatrix bool
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "per-probe timeout")
	flag.BoolVar(&ttsMatrix, "tts-matrix", false, "try common TTS deployment/API-version combinations")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		core.GetLogger().Debug("no .env file found, reading process environment only")
	}

	resolver := config.NewResolver(nil)
	if gate := resolver.Gate(); !gate.OK() {
		fmt.Println("Missing Azure OpenAI configuration:")
		for capability, fields := range gate {
			for _, f := range fields {
				fmt.Printf("  %s: %s\n", capability, f)
			}
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ok := probeChat(ctx, resolver)
	ok = probeSTT(ctx, resolver) && ok
	if ttsMatrix {
		ok = probeTTSMatrix(ctx, resolver) && ok
	} else {
		ok = probeTTS(ctx, resolver.Resolve(config.CapabilitySpeech)) && ok
	}

	if !ok {
		os.Exit(1)
	}
	fmt.Println("\nAll configured deployments are ready.")
}

func probeChat(ctx context.Context, resolver *config.Resolver) bool {
	creds := resolver.Resolve(config.CapabilityChat)
	fmt.Printf("Chat (%s, %s): ", creds.Deployment, creds.APIVersion)
	reply, err := azureopenai.NewResponder(creds).Respond(ctx,
		"You are a test probe.", "Say hello in five words")
	if err != nil {
		fmt.Printf("FAIL: %s\n", core.TruncateN(err.Error(), 300))
		return false
	}
	fmt.Printf("ok (%q)\n", reply)
	return true
}

func probeSTT(ctx context.Context, resolver *config.Resolver) bool {
	creds := resolver.Resolve(config.CapabilityTranscription)
	fmt.Printf("Whisper (%s, %s): ", creds.Deployment, creds.APIVersion)
	_, err := azureopenai.NewTranscriber(creds).Transcribe(ctx, silentWAV())
	if err != nil {
		fmt.Printf("FAIL: %s\n", core.TruncateN(err.Error(), 300))
		return false
	}
	fmt.Println("ok")
	return true
}

func probeTTS(ctx context.Context, creds config.Credentials) bool {
	fmt.Printf("TTS (%s, %s): ", creds.Deployment, creds.APIVersion)
	audio, err := azureopenai.NewSynthesizer(creds).Synthesize(ctx, "Hello from TTS test", "nova")
	if err != nil {
		fmt.Printf("FAIL: %s\n", core.TruncateN(err.Error(), 300))
		return false
	}
	fmt.Printf("ok (%d bytes)\n", len(audio))
	return true
}

// probeTTSMatrix tries common deployment name and API version
// combinations; TTS deployments are the ones most often misnamed.
func probeTTSMatrix(ctx context.Context, resolver *config.Resolver) bool {
	base := resolver.Resolve(config.CapabilitySpeech)

	names := dedupe([]string{base.Deployment, "tts", "tts-001", "tts-hd", "tts-hd-001"})
	versions := dedupe([]string{base.APIVersion, "2025-03-01-preview", "2024-10-21", "2024-08-01-preview", "2024-06-01", "2023-12-01-preview"})

	fmt.Printf("TTS matrix: endpoint %s, %d names x %d versions\n", base.Endpoint, len(names), len(versions))
	for _, version := range versions {
		for _, name := range names {
			creds := base
			creds.Deployment = name
			creds.APIVersion = version
			if probeTTS(ctx, creds) {
				fmt.Printf("\nSuggested .env updates:\nAZURE_OPENAI_TTS_DEPLOYMENT=%s\nAZURE_OPENAI_TTS_API_VERSION=%s\n", name, version)
				return true
			}
		}
	}
	fmt.Println("\nNo working combination found. Verify the TTS deployment name in Azure OpenAI Studio.")
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// silentWAV returns a minimal one-second 16kHz mono PCM16 WAV of
// silence, enough for Whisper to accept the request.
func silentWAV() []byte {
	const (
		sampleRate = 16000
		seconds    = 1
		dataLen    = sampleRate * seconds * 2
	)
	buf := make([]byte, 44+dataLen)
	copy(buf[0:4], "RIFF")
	putUint32(buf[4:8], uint32(36+dataLen))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putUint32(buf[16:20], 16)
	putUint16(buf[20:22], 1) // PCM
	putUint16(buf[22:24], 1) // mono
	putUint32(buf[24:28], sampleRate)
	putUint32(buf[28:32], sampleRate*2)
	putUint16(buf[32:34], 2)
	putUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putUint32(buf[40:44], uint32(dataLen))
	return buf
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
