package memory

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "memory.json"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s := tempStore(t)
	p := s.Load()
	if p.PreferredName != "" {
		t.Errorf("expected empty preferred name, got %q", p.PreferredName)
	}
	if p.SpeakStyle != StyleNormal {
		t.Errorf("expected normal style, got %q", p.SpeakStyle)
	}
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := NewStore(path).Load()
	if p != DefaultPreferences() {
		t.Errorf("expected defaults for corrupt file, got %+v", p)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []Preferences{
		{PreferredName: "", SpeakStyle: StyleNormal},
		{PreferredName: "Asha", SpeakStyle: StyleSlower},
		{PreferredName: "Ravi", SpeakStyle: StyleFaster},
	}
	for _, want := range tests {
		t.Run(string(want.SpeakStyle), func(t *testing.T) {
			s := tempStore(t)
			if err := s.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if got := s.Load(); got != want {
				t.Errorf("round trip mismatch: saved %+v, loaded %+v", want, got)
			}
		})
	}
}

func TestSave_OverwritesWholeRecord(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(Preferences{PreferredName: "Asha", SpeakStyle: StyleSlower}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(Preferences{PreferredName: "", SpeakStyle: StyleNormal}); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); got != DefaultPreferences() {
		t.Errorf("expected second save to win, got %+v", got)
	}
}

func TestLoad_UnknownStyleFallsBackToNormal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	content := `{"preferred_name":"Asha","speak_style":"shouting"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	p := NewStore(path).Load()
	if p.PreferredName != "Asha" {
		t.Errorf("expected name preserved, got %q", p.PreferredName)
	}
	if p.SpeakStyle != StyleNormal {
		t.Errorf("expected unknown style to normalize, got %q", p.SpeakStyle)
	}
}

func TestSave_FailureDoesNotPanic(t *testing.T) {
	// Point the store inside a directory that does not exist; Save must
	// return an error rather than panic, and Load still yields defaults.
	s := NewStore(filepath.Join(t.TempDir(), "missing", "memory.json"))
	if err := s.Save(Preferences{PreferredName: "Asha"}); err == nil {
		t.Error("expected save error for missing directory")
	}
	if got := s.Load(); got != DefaultPreferences() {
		t.Errorf("expected defaults after failed save, got %+v", got)
	}
}

func TestStyleNormalize(t *testing.T) {
	tests := []struct {
		in   Style
		want Style
	}{
		{StyleNormal, StyleNormal},
		{StyleSlower, StyleSlower},
		{StyleFaster, StyleFaster},
		{Style(""), StyleNormal},
		{Style("loud"), StyleNormal},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
