package events

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordguess/internal/storage"
)

// Sink receives events. Sinks shared between SSH sessions must be safe for
// concurrent use.
type Sink interface {
	Emit(ctx context.Context, e Event) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, e Event) error

func (f SinkFunc) Emit(ctx context.Context, e Event) error { return f(ctx, e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(context.Context, Event) error { return nil })

// Multi fans an event out to every sink and joins their errors.
type Multi []Sink

func (m Multi) Emit(ctx context.Context, e Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes events to a logger at debug level.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "events")}
}

func (s *LogSink) Emit(_ context.Context, e Event) error {
	meta := e.Metadata()
	kv := append([]any{"session", meta.Session, "pack", meta.Pack}, e.Fields()...)
	s.logger.Debug(e.Name(), kv...)
	return nil
}

// GameRecorder persists finished games.
type GameRecorder interface {
	RecordGame(ctx context.Context, g storage.GameRecord) (int64, error)
}

// StoreSink records GameEnded events and ignores the rest.
type StoreSink struct {
	recorder GameRecorder
}

func NewStoreSink(r GameRecorder) *StoreSink {
	return &StoreSink{recorder: r}
}

func (s *StoreSink) Emit(ctx context.Context, e Event) error {
	ended, ok := e.(GameEnded)
	if !ok {
		return nil
	}
	_, err := s.recorder.RecordGame(ctx, storage.GameRecord{
		SessionID: ended.Session,
		Pack:      ended.Pack,
		Word:      ended.Word,
		Won:       ended.Won,
		Completed: ended.Completed,
		Score:     ended.Score,
		Guesses:   ended.Guesses,
		HintsUsed: ended.HintsUsed,
		PlayedAt:  ended.At,
	})
	return err
}
