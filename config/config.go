// Package config resolves Azure OpenAI credentials for the three
// capabilities the agent calls: chat completion, Whisper transcription
// and speech synthesis. Each capability reads its own environment
// triple (API key, endpoint, API version) and falls back to the shared
// AZURE_OPENAI_* values when the capability-specific one is unset.
// Deployment names additionally fall back to fixed literals.
package config

import (
	"fmt"
	"os"
)

// Capability names one of the external AI services.
type Capability string

const (
	CapabilityChat          Capability = "chat"
	CapabilityTranscription Capability = "stt"
	CapabilitySpeech        Capability = "tts"
)

// Environment variable prefixes per capability, plus the shared fallback.
const (
	envPrefixGlobal = "AZURE_OPENAI"
	envPrefixChat   = "AZURE_OPENAI_CHAT"
	envPrefixSTT    = "AZURE_OPENAI_WHISPER"
	envPrefixTTS    = "AZURE_OPENAI_TTS"
)

// Default deployment names used when no deployment env var is set.
const (
	DefaultChatDeployment = "gpt-4"
	DefaultSTTDeployment  = "whisper"
	DefaultTTSDeployment  = "tts"
)

// Credentials is the resolved connection triple plus deployment name for
// one capability.
type Credentials struct {
	APIKey     string
	Endpoint   string
	APIVersion string
	Deployment string
}

// Lookup reads one environment variable. Injectable so tests never touch
// the process environment.
type Lookup func(key string) string

// Resolver applies the per-capability-then-global fallback policy over a
// Lookup.
type Resolver struct {
	lookup Lookup
}

// NewResolver returns a Resolver reading from lookup. Pass nil to read
// the process environment.
func NewResolver(lookup Lookup) *Resolver {
	if lookup == nil {
		lookup = os.Getenv
	}
	return &Resolver{lookup: lookup}
}

func capabilityPrefix(c Capability) string {
	switch c {
	case CapabilityChat:
		return envPrefixChat
	case CapabilityTranscription:
		return envPrefixSTT
	case CapabilitySpeech:
		return envPrefixTTS
	}
	return envPrefixGlobal
}

func defaultDeployment(c Capability) string {
	switch c {
	case CapabilityChat:
		return DefaultChatDeployment
	case CapabilityTranscription:
		return DefaultSTTDeployment
	case CapabilitySpeech:
		return DefaultTTSDeployment
	}
	return ""
}

// field resolves one credential field: capability override first, then
// the shared global value.
func (r *Resolver) field(c Capability, suffix string) string {
	if v := r.lookup(capabilityPrefix(c) + "_" + suffix); v != "" {
		return v
	}
	return r.lookup(envPrefixGlobal + "_" + suffix)
}

// Resolve returns the credentials for one capability. Fields that cannot
// be resolved are left empty; call Missing to find out which.
func (r *Resolver) Resolve(c Capability) Credentials {
	deployment := r.lookup(capabilityPrefix(c) + "_DEPLOYMENT")
	if deployment == "" {
		deployment = defaultDeployment(c)
	}
	return Credentials{
		APIKey:     r.field(c, "API_KEY"),
		Endpoint:   r.field(c, "ENDPOINT"),
		APIVersion: r.field(c, "API_VERSION"),
		Deployment: deployment,
	}
}

// Missing returns the unresolved required fields for one capability.
// Each entry names both accepted variables, e.g.
// "AZURE_OPENAI_CHAT_API_KEY or AZURE_OPENAI_API_KEY". Deployment is
// never required because it has a literal default.
func (r *Resolver) Missing(c Capability) []string {
	prefix := capabilityPrefix(c)
	var missing []string
	for _, suffix := range []string{"API_KEY", "ENDPOINT", "API_VERSION"} {
		if r.field(c, suffix) == "" {
			missing = append(missing, fmt.Sprintf("%s_%s or %s_%s", prefix, suffix, envPrefixGlobal, suffix))
		}
	}
	return missing
}

// Report maps capability to the list of its unresolved fields.
// Capabilities with nothing missing are omitted.
type Report map[Capability][]string

// OK reports whether every capability resolved completely.
func (rep Report) OK() bool {
	return len(rep) == 0
}

// Gate checks all three capabilities at once. The pipeline must not run
// unless the returned report is empty: partial operation with only some
// capabilities configured is refused.
func (r *Resolver) Gate() Report {
	rep := Report{}
	for _, c := range []Capability{CapabilityChat, CapabilityTranscription, CapabilitySpeech} {
		if missing := r.Missing(c); len(missing) > 0 {
			rep[c] = missing
		}
	}
	return rep
}
