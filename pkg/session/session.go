// Package session runs frame-synchronous capture sessions: for each frame
// index it looks up the compiled script's control set and stamps it onto the
// request handed to the capture sink.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencapture/opencapture/pkg/controls"
	"github.com/opencapture/opencapture/pkg/script"
)

// Request is one queued capture request with the controls to apply for its
// frame. Controls is empty for frames the script does not mention.
type Request struct {
	Frame    uint
	Controls controls.List
}

// Sink receives per-frame capture requests. The default LogSink stands in
// when no device pipeline is attached.
type Sink interface {
	Queue(ctx context.Context, req Request) error
}

// Options configures a capture session.
type Options struct {
	// Frames is the number of frames to capture.
	Frames uint `validate:"required,gt=0"`
}

// Session drives one capture run over a compiled script.
type Session struct {
	script *script.Script
	sink   Sink
	opts   Options
	runID  string
	logger zerolog.Logger
}

// New creates a session over a valid compiled script. Options are validated
// before the session is usable.
func New(s *script.Script, sink Sink, opts Options, logger zerolog.Logger) (*Session, error) {
	if !s.Valid() {
		return nil, errors.New("capture script is not valid")
	}
	if sink == nil {
		return nil, errors.New("capture sink is required")
	}
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid session options: %w", err)
	}

	runID := uuid.NewString()
	return &Session{
		script: s,
		sink:   sink,
		opts:   opts,
		runID:  runID,
		logger: logger.With().
			Str("component", "session").
			Str("run_id", runID).
			Logger(),
	}, nil
}

// RunID returns the unique identifier of this capture run.
func (s *Session) RunID() string { return s.runID }

// Run queues one request per frame index, in order, each stamped with that
// frame's scripted controls. The compiled script is read-only shared state;
// Run never mutates it.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info().Uint("frames", s.opts.Frames).Msg("Starting capture run")

	for frame := uint(0); frame < s.opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("capture run aborted at frame %d: %w", frame, err)
		}

		ctrls := s.script.ControlsForFrame(frame)
		if ctrls.Len() > 0 {
			s.logger.Debug().
				Uint("frame", frame).
				Int("controls", ctrls.Len()).
				Msg("Applying scripted controls")
		}

		if err := s.sink.Queue(ctx, Request{Frame: frame, Controls: ctrls}); err != nil {
			return fmt.Errorf("queueing frame %d: %w", frame, err)
		}
	}

	s.logger.Info().Msg("Capture run complete")
	return nil
}

// LogSink logs each queued request instead of submitting it to a device.
type LogSink struct {
	Logger zerolog.Logger
}

// Queue implements Sink.
func (s *LogSink) Queue(_ context.Context, req Request) error {
	s.Logger.Info().
		Uint("frame", req.Frame).
		Int("controls", req.Controls.Len()).
		Msg("Capture request queued")
	return nil
}
