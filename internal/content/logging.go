package content

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pathprep/pathprep/internal/store"
)

// EventLog records content-generation calls. Satisfied by *store.EventRepo.
type EventLog interface {
	AppendContentRequest(ctx context.Context, data store.ContentEventData) error
}

// LoggingProvider is a decorator that records every call as an event.
type LoggingProvider struct {
	inner Provider
	log   EventLog
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, log EventLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	conceptID := ConceptFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.ContentEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		ConceptID: conceptID,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log failures must not fail the request.
	if logErr := l.log.AppendContentRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log content event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
