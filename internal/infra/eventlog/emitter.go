package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"chershare/internal/events"
)

type Appender interface {
	Append(ctx context.Context, kind string, payload []byte) error
}

// JournalEmitter logs every event and appends it to the journal.
// Emission never fails the business operation that produced the event;
// a journal write error is logged and dropped.
type JournalEmitter struct {
	journal Appender
	logger  *slog.Logger
}

func NewJournalEmitter(journal Appender, logger *slog.Logger) *JournalEmitter {
	return &JournalEmitter{journal: journal, logger: logger}
}

func (e *JournalEmitter) Emit(ctx context.Context, ev events.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		e.logger.Error("failed to marshal event", "kind", ev.Kind(), "error", err)
		return
	}

	e.logger.Info("event emitted", "kind", ev.Kind(), "payload", string(payload))

	if err := e.journal.Append(ctx, ev.Kind(), payload); err != nil {
		e.logger.Error("failed to journal event", "kind", ev.Kind(), "error", err)
	}
}
