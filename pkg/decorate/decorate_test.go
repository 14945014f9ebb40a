package decorate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/travver/travver/pkg/remote"
)

func TestValidStyle(t *testing.T) {
	for _, s := range Styles() {
		if !ValidStyle(s) {
			t.Fatalf("style %q rejected", s)
		}
	}
	if ValidStyle("cubist") {
		t.Fatalf("unknown style accepted")
	}
}

func TestDecorate(t *testing.T) {
	styled := []byte("styled image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/memories/photo" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("style"); got != "watercolor" {
			t.Errorf("style not forwarded: %q", got)
		}
		f, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part missing: %v", err)
		} else {
			f.Close()
			if header.Filename != "osaka.jpg" {
				t.Errorf("filename not forwarded: %q", header.Filename)
			}
		}
		json.NewEncoder(w).Encode(decorateResponse{
			Success:        true,
			ResultImage:    styled,
			ResultMimeType: "image/png",
			Style:          "watercolor",
		})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	res, err := c.Decorate(context.Background(), "osaka.jpg", []byte("original"), "watercolor")
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	if !bytes.Equal(res.Image, styled) {
		t.Fatalf("unexpected image bytes")
	}
	if res.MimeType != "image/png" {
		t.Fatalf("unexpected mime type %q", res.MimeType)
	}
}

func TestDecorateValidation(t *testing.T) {
	c := &Client{BaseURL: "http://unused"}
	if _, err := c.Decorate(context.Background(), "a.jpg", nil, "watercolor"); err == nil {
		t.Fatalf("empty image accepted")
	}
	if _, err := c.Decorate(context.Background(), "a.jpg", make([]byte, MaxImageBytes+1), "watercolor"); err == nil {
		t.Fatalf("oversized image accepted")
	}
	if _, err := c.Decorate(context.Background(), "a.jpg", []byte("img"), "cubist"); err == nil {
		t.Fatalf("unknown style accepted")
	}
}

func TestDecorateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported media", http.StatusUnsupportedMediaType)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Decorate(context.Background(), "a.jpg", []byte("img"), "watercolor")
	if kind, ok := remote.KindOf(err); !ok || kind != remote.KindRejected {
		t.Fatalf("expected rejected, got %v", err)
	}
}

func TestDecorateDefaultsMimeType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(decorateResponse{Success: true, ResultImage: []byte("x")})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	res, err := c.Decorate(context.Background(), "a.jpg", []byte("img"), "sketch")
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	if res.MimeType != "image/jpeg" {
		t.Fatalf("expected jpeg default, got %q", res.MimeType)
	}
}
