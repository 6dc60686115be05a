package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPSubmitter_PostsJSON(t *testing.T) {
	var got submitPayload
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sub := Submission{Rating: 4, Comment: strPtr("nice pacing")}
	h := NewHTTPSubmitter(srv.URL, 5*time.Second)
	if err := h.Submit(context.Background(), "sess-1", sub); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if got.SessionID != "sess-1" || got.Rating != 4 {
		t.Errorf("payload = %+v", got)
	}
	if got.Comment == nil || *got.Comment != "nice pacing" {
		t.Errorf("comment = %v, want 'nice pacing'", got.Comment)
	}
}

func TestHTTPSubmitter_OmitsAbsentComment(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
	}))
	defer srv.Close()

	h := NewHTTPSubmitter(srv.URL, 5*time.Second)
	if err := h.Submit(context.Background(), "sess-2", Submission{Rating: 3}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, present := raw["comment"]; present {
		t.Error("absent comment should be omitted from the payload")
	}
}

func TestHTTPSubmitter_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewHTTPSubmitter(srv.URL, 5*time.Second)
	if err := h.Submit(context.Background(), "sess-3", Submission{Rating: 1}); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestNopSubmitter(t *testing.T) {
	if err := (NopSubmitter{}).Submit(context.Background(), "s", Submission{Rating: 5}); err != nil {
		t.Errorf("nop submit: %v", err)
	}
}
