package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionRequest(t *testing.T, cookies []*http.Cookie) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		r.AddCookie(cookie)
	}
	return w, r
}

func TestSessionStoreFlashAndNameCoexist(t *testing.T) {
	store := newSessionStore(nil)

	w, r := sessionRequest(t, nil)
	store.SetFlash(w, r, "welcome back")
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	w, r = sessionRequest(t, cookies)
	store.SetName(w, r, "Alice")

	// Setting the name must not drop the pending flash, and vice versa.
	w, r = sessionRequest(t, cookies)
	if got := store.GetName(w, r); got != "Alice" {
		t.Fatalf("expected remembered name, got %q", got)
	}
	w, r = sessionRequest(t, cookies)
	if got := store.PopFlash(w, r); got != "welcome back" {
		t.Fatalf("expected pending flash, got %q", got)
	}
	w, r = sessionRequest(t, cookies)
	if got := store.PopFlash(w, r); got != "" {
		t.Fatalf("expected flash consumed, got %q", got)
	}
	w, r = sessionRequest(t, cookies)
	if got := store.GetName(w, r); got != "Alice" {
		t.Fatalf("expected name to survive the flash pop, got %q", got)
	}
}

func TestSessionStoreBlankNameIgnored(t *testing.T) {
	store := newSessionStore(nil)
	w, r := sessionRequest(t, nil)
	store.SetName(w, r, "Alice")
	cookies := w.Result().Cookies()

	w, r = sessionRequest(t, cookies)
	store.SetName(w, r, "   ")
	w, r = sessionRequest(t, cookies)
	if got := store.GetName(w, r); got != "Alice" {
		t.Fatalf("blank names must not overwrite, got %q", got)
	}
}
