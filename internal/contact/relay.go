package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kdarade/portfolio/internal/contact"

// Relay delivers a submission to the mail relay.
type Relay interface {
	Send(ctx context.Context, s Submission) error
}

// RelayFunc adapts a function to Relay.
type RelayFunc func(ctx context.Context, s Submission) error

// Send calls f.
func (f RelayFunc) Send(ctx context.Context, s Submission) error { return f(ctx, s) }

// HTTPRelay POSTs submissions as JSON to a fixed endpoint.
type HTTPRelay struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	tracer   trace.Tracer
}

// RelayOption configures an HTTPRelay.
type RelayOption func(*HTTPRelay)

// WithHTTPClient replaces the client used for relay requests.
func WithHTTPClient(c *http.Client) RelayOption {
	return func(r *HTTPRelay) {
		r.client = c
	}
}

// WithTimeout bounds each relay request, whichever client is used. Zero
// keeps the client's own limit.
func WithTimeout(d time.Duration) RelayOption {
	return func(r *HTTPRelay) {
		r.timeout = d
	}
}

// WithTracerProvider sets where relay spans go. Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) RelayOption {
	return func(r *HTTPRelay) {
		r.tracer = tp.Tracer(tracerName)
	}
}

// NewHTTPRelay creates a relay for endpoint.
func NewHTTPRelay(endpoint string, opts ...RelayOption) *HTTPRelay {
	r := &HTTPRelay{
		endpoint: endpoint,
		client:   &http.Client{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timeout > 0 {
		c := *r.client
		c.Timeout = r.timeout
		r.client = &c
	}
	return r
}

// Endpoint returns the URL submissions are posted to.
func (r *HTTPRelay) Endpoint() string { return r.endpoint }

// Send POSTs s to the endpoint. Any 2xx response is success; the body is
// discarded unread.
func (r *HTTPRelay) Send(ctx context.Context, s Submission) error {
	ctx, span := r.tracer.Start(ctx, "contact.relay",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", http.MethodPost)),
	)
	defer span.End()

	err := r.send(ctx, s, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *HTTPRelay) send(ctx context.Context, s Submission, span trace.Span) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{StatusCode: resp.StatusCode}
	}
	return nil
}
