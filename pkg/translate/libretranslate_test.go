package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestLibreTranslateClient_Translate(t *testing.T) {
	var gotForm map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/translate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want form-encoded", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"q":      r.PostFormValue("q"),
			"source": r.PostFormValue("source"),
			"target": r.PostFormValue("target"),
			"format": r.PostFormValue("format"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translatedText": "Hola"}`))
	}))
	defer ts.Close()

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	got, err := c.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hola" {
		t.Errorf("got %q, want Hola", got)
	}

	want := map[string]string{"q": "Hello", "source": "en", "target": "es", "format": "text"}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("form field %s = %q, want %q", k, gotForm[k], v)
		}
	}
}

func TestLibreTranslateClient_Translate_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	_, err := c.Translate(context.Background(), "Hello", "en", "es")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %T is not a StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "overloaded") {
		t.Errorf("body %q does not carry the upstream response", statusErr.Body)
	}
}

func TestLibreTranslateClient_Translate_MissingField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	_, err := c.Translate(context.Background(), "Hello", "en", "es")
	if err == nil {
		t.Fatal("expected error for response without translatedText")
	}
	if !errors.As(err, &ErrMissingTranslation{}) {
		t.Fatalf("error %T is not ErrMissingTranslation", err)
	}
}

func TestLibreTranslateClient_Translate_ConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL
	ts.Close()

	c := NewLibreTranslateClient(base, 0, quietLogger())

	_, err := c.Translate(context.Background(), "Hello", "en", "es")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("transport failure must not be a StatusError")
	}
}

func TestLibreTranslateClient_Translate_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer ts.Close()
	defer close(block)

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Translate(ctx, "Hello", "en", "es"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestLibreTranslateClient_SupportedLanguages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/languages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"code":"en","name":"English"},{"code":"es","name":"Spanish"}]`))
	}))
	defer ts.Close()

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	codes, err := c.SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("SupportedLanguages: %v", err)
	}
	if len(codes) != 2 || codes[0] != "en" || codes[1] != "es" {
		t.Errorf("codes = %v, want [en es]", codes)
	}
}

func TestLibreTranslateClient_CheckHealth(t *testing.T) {
	healthy := true
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewLibreTranslateClient(ts.URL, 0, quietLogger())

	if err := c.CheckHealth(context.Background()); err != nil {
		t.Errorf("CheckHealth on healthy server: %v", err)
	}

	healthy = false
	if err := c.CheckHealth(context.Background()); err == nil {
		t.Error("CheckHealth on unhealthy server returned nil")
	}
}
