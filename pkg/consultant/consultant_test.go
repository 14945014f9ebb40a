package consultant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/travver/travver/pkg/remote"
)

func TestConversationCap(t *testing.T) {
	var c Conversation
	for i := 0; i < MaxHistory+10; i++ {
		c.Append("user", fmt.Sprintf("message %d", i))
	}
	if len(c.Messages) != MaxHistory {
		t.Fatalf("expected %d messages, got %d", MaxHistory, len(c.Messages))
	}
	if c.Messages[0].Content != "message 10" {
		t.Fatalf("oldest messages not dropped: %q", c.Messages[0].Content)
	}
	if c.Messages[len(c.Messages)-1].Content != fmt.Sprintf("message %d", MaxHistory+9) {
		t.Fatalf("newest message lost: %q", c.Messages[len(c.Messages)-1].Content)
	}
}

func TestConsult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/consult" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Message != "where should I eat?" {
			t.Errorf("message not forwarded: %q", req.Message)
		}
		if len(req.History) != 2 {
			t.Errorf("history not forwarded: %d", len(req.History))
		}
		json.NewEncoder(w).Encode(consultResponse{Success: true, Response: "try Dotonbori"})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	reply, err := c.Consult(context.Background(), Request{
		Message: "where should I eat?",
		History: []Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply != "try Dotonbori" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestConsultEmptyMessage(t *testing.T) {
	c := &Client{BaseURL: "http://unused"}
	if _, err := c.Consult(context.Background(), Request{}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestConsultRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Consult(context.Background(), Request{Message: "hi"})
	if kind, ok := remote.KindOf(err); !ok || kind != remote.KindRejected {
		t.Fatalf("expected rejected, got %v", err)
	}
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/consult/stream" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprintln(w, "first chunk")
		fmt.Fprintln(w, "second chunk")
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	var got []string
	err := c.Stream(context.Background(), Request{Message: "hi"}, func(chunk string) error {
		got = append(got, chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if strings.Join(got, "|") != "first chunk|second chunk" {
		t.Fatalf("unexpected chunks %v", got)
	}
}

func TestStreamCallbackStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "one")
		fmt.Fprintln(w, "two")
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	stop := fmt.Errorf("enough")
	err := c.Stream(context.Background(), Request{Message: "hi"}, func(chunk string) error {
		return stop
	})
	if err != stop {
		t.Fatalf("expected callback error back, got %v", err)
	}
}
