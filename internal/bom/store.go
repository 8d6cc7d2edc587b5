package bom

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "bommie/bom"

// Store reads and writes units files.
type Store struct {
	logger *zap.Logger
	tracer oteltrace.Tracer
}

// NewStore creates a store. Spans go to the global tracer provider, which is a
// no-op unless telemetry was set up. A nil logger disables logging.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger: logger.Named("store"),
		tracer: otel.Tracer(tracerName),
	}
}

// Load reads and parses the units file at path.
// Returns *FileReadError or *ParseError on failure.
func (s *Store) Load(ctx context.Context, path string) ([]Print, error) {
	_, span := s.tracer.Start(ctx, "bom.Load", oteltrace.WithAttributes(
		attribute.String("bom.path", path),
	))
	defer span.End()

	data, err := os.ReadFile(path)
	if err != nil {
		err = &FileReadError{Path: path, Err: err}
		s.fail(span, "load failed", path, err)
		return nil, err
	}
	prints, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		s.fail(span, "load failed", path, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("bom.prints", len(prints)))
	s.logger.Info("loaded units file",
		zap.String("path", path),
		zap.Int("prints", len(prints)),
		zap.Int("bytes", len(data)))
	return prints, nil
}

// Save writes prints to path, replacing any existing file.
// Returns *FileWriteError on failure.
func (s *Store) Save(ctx context.Context, path string, prints []Print) error {
	_, span := s.tracer.Start(ctx, "bom.Save", oteltrace.WithAttributes(
		attribute.String("bom.path", path),
		attribute.Int("bom.prints", len(prints)),
	))
	defer span.End()

	data, err := Marshal(prints)
	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}
	if err != nil {
		err = &FileWriteError{Path: path, Err: err}
		s.fail(span, "save failed", path, err)
		return err
	}

	s.logger.Info("saved units file",
		zap.String("path", path),
		zap.Int("prints", len(prints)),
		zap.Int("bytes", len(data)))
	return nil
}

func (s *Store) fail(span oteltrace.Span, msg, path string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.Warn(msg, zap.String("path", path), zap.Error(err))
}

// WithExt returns path with the units extension appended when it has none.
func WithExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + FileExt
	}
	return path
}
