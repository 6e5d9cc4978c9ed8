// Package prompt builds the system instruction sent with every chat
// completion. Clause order is fixed: language base instruction, then
// the address-by-name clause, then the speaking-style clause.
package prompt

import (
	"fmt"

	"voicechat/langdetect"
	"voicechat/memory"
)

const (
	baseHindi   = "You are a helpful voice assistant. Reply in Hindi. Keep responses concise and conversational."
	baseEnglish = "You are a helpful voice assistant. Reply in English. Keep responses concise and conversational."

	clauseSlower = " Speak a bit slower and clearer."
	clauseFaster = " Speak a bit faster and energetic."
)

// Compose returns the system prompt for one turn.
func Compose(lang langdetect.Language, prefs memory.Preferences) string {
	base := baseEnglish
	if lang == langdetect.LanguageHindi {
		base = baseHindi
	}

	name := ""
	if prefs.PreferredName != "" {
		name = fmt.Sprintf(" Address the user as %s.", prefs.PreferredName)
	}

	style := ""
	switch prefs.SpeakStyle.Normalize() {
	case memory.StyleSlower:
		style = clauseSlower
	case memory.StyleFaster:
		style = clauseFaster
	}

	return base + name + style
}
