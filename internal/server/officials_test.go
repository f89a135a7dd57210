package server

import (
	"path/filepath"
	"testing"
)

func newTestOfficialStore(t *testing.T) *OfficialStore {
	t.Helper()
	return NewOfficialStore(filepath.Join(t.TempDir(), "officials.json"))
}

func TestOfficialStoreAddGeneratesSlug(t *testing.T) {
	store := newTestOfficialStore(t)
	official, err := store.Add(Official{
		Name:      "Kathy Hochul",
		Position:  "Governor",
		State:     "New York",
		PhotoPath: "photos/kathy.jpg",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if official.ID != "new_york_governor_0" {
		t.Fatalf("unexpected slug %s", official.ID)
	}
	if official.Category != "general" {
		t.Fatalf("expected default category, got %s", official.Category)
	}
}

func TestOfficialStoreAddRejectsDuplicate(t *testing.T) {
	store := newTestOfficialStore(t)
	if _, err := store.Add(Official{ID: "ny_gov", Name: "Kathy Hochul", Position: "Governor", State: "New York"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Add(Official{ID: "ny_gov", Name: "Someone Else", Position: "Governor", State: "New York"}); err == nil {
		t.Fatal("expected duplicate rejection")
	}
}

func TestOfficialStoreRoundTripsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "officials.json")
	store := NewOfficialStore(path)
	if err := store.Replace(sampleOfficials()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	reloaded := NewOfficialStore(path)
	if err := reloaded.LoadFile(); err != nil {
		t.Fatalf("load: %v", err)
	}
	total, real, fake := reloaded.Counts()
	if total != 6 || real != 5 || fake != 1 {
		t.Fatalf("unexpected counts %d/%d/%d", total, real, fake)
	}
	if _, ok := reloaded.FindByID("fake_person_1"); !ok {
		t.Fatal("expected decoy to survive the round trip")
	}
}

func TestOfficialStoreLoadMissingFile(t *testing.T) {
	store := newTestOfficialStore(t)
	if err := store.LoadFile(); err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	total, _, _ := store.Counts()
	if total != 0 {
		t.Fatalf("expected empty store, got %d", total)
	}
}

func TestOfficialStoreAvailableFiltersFakes(t *testing.T) {
	store := newTestOfficialStore(t)
	if err := store.Replace(sampleOfficials()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := len(store.Available(false)); got != 5 {
		t.Fatalf("expected 5 real officials, got %d", got)
	}
	if got := len(store.Available(true)); got != 6 {
		t.Fatalf("expected 6 with fakes, got %d", got)
	}
}

func TestGameStoreSetupReplacesSession(t *testing.T) {
	store := NewGameStore()
	store.Setup([]string{"Alice"})
	session := store.Setup([]string{"Bob", "Cleo"})
	if len(session.Players) != 2 {
		t.Fatalf("expected fresh roster, got %#v", session.Players)
	}
	if !store.Active() {
		t.Fatal("expected active session")
	}
}

func TestGameStoreUpdateWithoutSession(t *testing.T) {
	store := NewGameStore()
	if _, err := store.Update(func(session *Session) error { return nil }); err != errNoActiveSession {
		t.Fatalf("expected errNoActiveSession, got %v", err)
	}
}
