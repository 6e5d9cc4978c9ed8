// Package langdetect classifies transcript text as Hindi or English
// based on the share of Devanagari letters.
package langdetect

import "unicode"

// Language is the detected transcript language.
type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageEnglish Language = "en"
)

// DisplayName returns the human-readable language name.
func (l Language) DisplayName() string {
	if l == LanguageHindi {
		return "Hindi"
	}
	return "English"
}

// HindiThreshold is the minimum share of Devanagari letters among all
// letters for text to be classified as Hindi. The margin tolerates
// mixed-script sentences such as transliterated proper nouns.
const HindiThreshold = 0.30

// Devanagari Unicode block bounds.
const (
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// Detect classifies text as Hindi or English. Text with no letters at
// all, including the empty string, is English.
func Detect(text string) Language {
	var devanagari, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r >= devanagariLo && r <= devanagariHi {
			devanagari++
		}
	}
	if letters == 0 {
		return LanguageEnglish
	}
	if float64(devanagari)/float64(letters) >= HindiThreshold {
		return LanguageHindi
	}
	return LanguageEnglish
}
