package server

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
)

func postOfficialForm(t *testing.T, ts *httptest.Server, fields map[string]string, photo []byte) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if photo != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="photo"; filename="upload.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(photo); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/admin/official", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func TestAdminCreateOfficial(t *testing.T) {
	srv, ts := newTestServer(t)

	body := postOfficialForm(t, ts, map[string]string{
		"name":     "Kathy Hochul",
		"position": "Governor",
		"state":    "New York",
		"category": "governor",
		"fun_fact": "First female governor of New York",
	}, testPNG(t, 64, 64))
	if body["success"] != true {
		t.Fatalf("expected success, got %#v", body)
	}
	id, ok := body["official_id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected official id, got %#v", body["official_id"])
	}

	official, found := srv.officials.FindByID(id)
	if !found {
		t.Fatalf("expected %s in the roster", id)
	}
	if !strings.HasPrefix(official.PhotoPath, "photos/") {
		t.Fatalf("expected stored photo path, got %s", official.PhotoPath)
	}
}

func TestAdminCreateOfficialValidation(t *testing.T) {
	_, ts := newTestServer(t)

	body := postOfficialForm(t, ts, map[string]string{
		"name":     "",
		"position": "Governor",
		"state":    "Atlantis",
	}, testPNG(t, 64, 64))
	if body["success"] != false {
		t.Fatalf("expected validation failure, got %#v", body)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) == 0 {
		t.Fatalf("expected error list, got %#v", body)
	}
}

func TestAdminCreateOfficialRequiresPhoto(t *testing.T) {
	_, ts := newTestServer(t)

	body := postOfficialForm(t, ts, map[string]string{
		"name":     "Kathy Hochul",
		"position": "Governor",
		"state":    "New York",
	}, nil)
	if body["success"] != false || body["message"] != "Photo required" {
		t.Fatalf("expected photo failure, got %#v", body)
	}
}

func TestAdminSampleData(t *testing.T) {
	srv, ts := newTestServer(t)

	resp := doRequest(t, ts, http.MethodPost, "/api/admin/sample-data", nil)
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success, got %#v", body)
	}
	total, real, fake := srv.officials.Counts()
	if total != 6 || real != 5 || fake != 1 {
		t.Fatalf("unexpected counts %d/%d/%d", total, real, fake)
	}
}

func TestAdminViewRendersRoster(t *testing.T) {
	srv, ts := newTestServer(t)
	seedOfficials(t, srv)

	resp := doRequest(t, ts, http.MethodGet, "/admin", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "Kathy Hochul") {
		t.Fatal("expected roster entries on the admin page")
	}
	if !strings.Contains(page, "Create sample data") {
		t.Fatal("expected the sample data control")
	}
}
