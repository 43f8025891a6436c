package pushover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"phillies-updater/internal/notify"
	"phillies-updater/internal/providers"
)

func TestSendPostsFormFields(t *testing.T) {
	var capturedForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Fatalf("unexpected content type %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		capturedForm = map[string]string{
			"token":   r.PostForm.Get("token"),
			"user":    r.PostForm.Get("user"),
			"message": r.PostForm.Get("message"),
			"title":   r.PostForm.Get("title"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{Token: "app-token", UserKey: "user-key", Endpoint: srv.URL})
	err := client.Send(context.Background(), notify.Event{Message: "FINAL - Phillies: 3 vs Mets: 2", Title: "Update"})
	if err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}

	if capturedForm["token"] != "app-token" || capturedForm["user"] != "user-key" {
		t.Fatalf("unexpected credentials: %+v", capturedForm)
	}
	if capturedForm["message"] != "FINAL - Phillies: 3 vs Mets: 2" || capturedForm["title"] != "Update" {
		t.Fatalf("unexpected payload: %+v", capturedForm)
	}
}

func TestSendDefaultsTitle(t *testing.T) {
	var capturedTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		capturedTitle = r.PostForm.Get("title")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	if err := client.Send(context.Background(), notify.Event{Message: "hi"}); err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}
	if capturedTitle != notify.DefaultTitle {
		t.Fatalf("expected default title, got %q", capturedTitle)
	}
}

func TestSendSurfacesNon2xxAsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	err := client.Send(context.Background(), notify.NewEvent("hi"))
	netErr, ok := providers.AsNetworkError(err)
	if !ok || netErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected NetworkError with status, got %v", err)
	}
}
