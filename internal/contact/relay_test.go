package contact

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type capturedRequest struct {
	method      string
	contentType string
	accept      string
	body        map[string]any
}

func relayServer(t *testing.T, status int) (*httptest.Server, chan capturedRequest) {
	t.Helper()
	got := make(chan capturedRequest, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		json.Unmarshal(data, &body)
		got <- capturedRequest{
			method:      r.Method,
			contentType: r.Header.Get("Content-Type"),
			accept:      r.Header.Get("Accept"),
			body:        body,
		}
		w.WriteHeader(status)
		w.Write([]byte(`{"success":"false","message":"ignored"}`))
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func TestHTTPRelaySendsJSON(t *testing.T) {
	ts, got := relayServer(t, http.StatusOK)
	relay := NewHTTPRelay(ts.URL, WithHTTPClient(ts.Client()))

	if err := relay.Send(t.Context(), ada); err != nil {
		t.Fatalf("Send: %v", err)
	}

	req := <-got
	if req.method != http.MethodPost {
		t.Errorf("expected POST, got %s", req.method)
	}
	if req.contentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", req.contentType)
	}
	if req.accept != "application/json" {
		t.Errorf("expected JSON accept header, got %q", req.accept)
	}
	if len(req.body) != 3 {
		t.Errorf("expected exactly 3 keys, got %v", req.body)
	}
	for key, want := range map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"} {
		if req.body[key] != want {
			t.Errorf("%s: got %v, want %q", key, req.body[key], want)
		}
	}
}

func TestHTTPRelayStatusHandling(t *testing.T) {
	tests := []struct {
		status   int
		rejected bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusNoContent, false},
		{http.StatusBadRequest, true},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			ts, got := relayServer(t, tt.status)
			relay := NewHTTPRelay(ts.URL, WithHTTPClient(ts.Client()))

			err := relay.Send(t.Context(), ada)
			<-got
			if !tt.rejected {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			var rej *RejectedError
			if !errors.As(err, &rej) {
				t.Fatalf("expected RejectedError, got %v", err)
			}
			if rej.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rej.StatusCode)
			}
		})
	}
}

func TestHTTPRelayNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := NewHTTPRelay(url).Send(t.Context(), ada)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if errors.Is(err, ErrRejected) {
		t.Error("a transport failure is not a rejection")
	}
}

func TestHTTPRelayBadEndpoint(t *testing.T) {
	err := NewHTTPRelay("://not a url").Send(t.Context(), ada)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestHTTPRelayTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(ts.Close)

	relay := NewHTTPRelay(ts.URL, WithHTTPClient(ts.Client()), WithTimeout(50*time.Millisecond))
	if err := relay.Send(t.Context(), ada); !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error on timeout, got %v", err)
	}
}

func TestHTTPRelayTimeoutIgnoresOptionOrder(t *testing.T) {
	tests := []struct {
		name string
		opts func(c *http.Client) []RelayOption
	}{
		{"timeout first", func(c *http.Client) []RelayOption {
			return []RelayOption{WithTimeout(time.Second), WithHTTPClient(c)}
		}},
		{"client first", func(c *http.Client) []RelayOption {
			return []RelayOption{WithHTTPClient(c), WithTimeout(time.Second)}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &http.Transport{}
			supplied := &http.Client{Transport: transport}

			relay := NewHTTPRelay("http://relay.invalid", tt.opts(supplied)...)

			if relay.client.Timeout != time.Second {
				t.Errorf("timeout = %s, want 1s", relay.client.Timeout)
			}
			if relay.client.Transport != transport {
				t.Error("the supplied client's transport must be kept")
			}
			if supplied.Timeout != 0 {
				t.Error("the supplied client must not be modified")
			}
		})
	}
}

func TestHTTPRelayZeroTimeoutKeepsClient(t *testing.T) {
	supplied := &http.Client{Timeout: 5 * time.Second}
	relay := NewHTTPRelay("http://relay.invalid", WithHTTPClient(supplied), WithTimeout(0))
	if relay.client != supplied {
		t.Error("zero timeout should use the supplied client as is")
	}
}
