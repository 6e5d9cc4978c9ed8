package prompt

import (
	"strings"
	"testing"

	"voicechat/langdetect"
	"voicechat/memory"
)

func TestCompose_DeterministicClauseOrder(t *testing.T) {
	got := Compose(langdetect.LanguageHindi, memory.Preferences{
		PreferredName: "Asha",
		SpeakStyle:    memory.StyleSlower,
	})
	want := "You are a helpful voice assistant. Reply in Hindi. Keep responses concise and conversational." +
		" Address the user as Asha." +
		" Speak a bit slower and clearer."
	if got != want {
		t.Errorf("Compose mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		lang     langdetect.Language
		prefs    memory.Preferences
		contains []string
		excludes []string
	}{
		{
			name:     "english defaults",
			lang:     langdetect.LanguageEnglish,
			prefs:    memory.DefaultPreferences(),
			contains: []string{"Reply in English."},
			excludes: []string{"Address the user", "slower", "faster"},
		},
		{
			name:     "hindi base",
			lang:     langdetect.LanguageHindi,
			prefs:    memory.DefaultPreferences(),
			contains: []string{"Reply in Hindi."},
		},
		{
			name:     "name clause only",
			lang:     langdetect.LanguageEnglish,
			prefs:    memory.Preferences{PreferredName: "Ravi"},
			contains: []string{"Address the user as Ravi."},
			excludes: []string{"slower", "faster"},
		},
		{
			name:     "faster style",
			lang:     langdetect.LanguageEnglish,
			prefs:    memory.Preferences{SpeakStyle: memory.StyleFaster},
			contains: []string{"Speak a bit faster and energetic."},
		},
		{
			name:     "unknown style appends nothing",
			lang:     langdetect.LanguageEnglish,
			prefs:    memory.Preferences{SpeakStyle: memory.Style("whisper")},
			excludes: []string{"slower", "faster"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.lang, tt.prefs)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("expected prompt to contain %q, got %q", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("expected prompt to exclude %q, got %q", s, got)
				}
			}
		})
	}
}
