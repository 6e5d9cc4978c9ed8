package session

import (
	"path/filepath"
	"testing"

	"voicechat/memory"
)

func newTestSession(t *testing.T) (*Session, *memory.Store) {
	t.Helper()
	store := memory.NewStore(filepath.Join(t.TempDir(), "memory.json"))
	return New(store, nil), store
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Voice() != "nova" {
		t.Errorf("default voice = %q", s.Voice())
	}
	if !s.AutoDetectLanguage() {
		t.Error("auto-detect should default to on")
	}
	if s.Preferences() != memory.DefaultPreferences() {
		t.Errorf("expected default preferences, got %+v", s.Preferences())
	}
	if s.Indicator == nil {
		t.Fatal("expected a playback indicator")
	}
}

func TestNew_LoadsStoredPreferences(t *testing.T) {
	store := memory.NewStore(filepath.Join(t.TempDir(), "memory.json"))
	want := memory.Preferences{PreferredName: "Asha", SpeakStyle: memory.StyleFaster}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}
	s := New(store, nil)
	if s.Preferences() != want {
		t.Errorf("expected stored preferences, got %+v", s.Preferences())
	}
}

func TestSavePreferences_PersistsAndNormalizes(t *testing.T) {
	s, store := newTestSession(t)
	s.SavePreferences(memory.Preferences{PreferredName: "Ravi", SpeakStyle: memory.Style("bogus")})

	if s.Preferences().SpeakStyle != memory.StyleNormal {
		t.Errorf("expected normalized style, got %q", s.Preferences().SpeakStyle)
	}
	if got := store.Load(); got.PreferredName != "Ravi" {
		t.Errorf("expected persisted record, got %+v", got)
	}
}

func TestSavePreferences_StorageFailureKeepsInMemoryCopy(t *testing.T) {
	// A store rooted in a missing directory cannot save; the session
	// must keep serving the new preferences anyway.
	store := memory.NewStore(filepath.Join(t.TempDir(), "missing", "memory.json"))
	s := New(store, nil)
	want := memory.Preferences{PreferredName: "Asha", SpeakStyle: memory.StyleSlower}
	s.SavePreferences(want)
	if s.Preferences() != want {
		t.Errorf("expected in-memory copy despite save failure, got %+v", s.Preferences())
	}
}

func TestSetVoice(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetVoice("onyx")
	if s.Voice() != "onyx" {
		t.Errorf("voice = %q, want onyx", s.Voice())
	}
	s.SetVoice("robotic")
	if s.Voice() != "onyx" {
		t.Errorf("unknown voice must be ignored, got %q", s.Voice())
	}
}

func TestSetAutoDetectLanguage(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetAutoDetectLanguage(false)
	if s.AutoDetectLanguage() {
		t.Error("expected auto-detect off")
	}
}

func TestValidVoice(t *testing.T) {
	for _, v := range Voices {
		if !ValidVoice(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}
	if ValidVoice("nova ") || ValidVoice("") {
		t.Error("invalid voices accepted")
	}
}
