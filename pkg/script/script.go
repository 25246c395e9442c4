package script

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencapture/opencapture/pkg/controls"
)

// Script is a compiled capture script: an immutable table mapping frame
// indices to the control values a capture loop applies at that frame.
type Script struct {
	byName map[string]*controls.ID
	frames map[uint]controls.List
	valid  bool
	logger zerolog.Logger
}

// Load reads and compiles the capture script at path against the device
// catalog. The returned Script is queryable only when err is nil.
func Load(path string, catalog controls.Catalog, logger zerolog.Logger) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening capture script %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f, catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("compiling capture script %s: %w", path, err)
	}
	return s, nil
}

// Parse compiles a capture script read from r against the device catalog.
// The catalog's control names are mapped to their identities once, before
// parsing starts, so script entries resolve by name.
func Parse(r io.Reader, catalog controls.Catalog, logger zerolog.Logger) (*Script, error) {
	s := &Script{
		byName: make(map[string]*controls.ID),
		frames: make(map[uint]controls.List),
		logger: logger.With().Str("component", "capture-script").Logger(),
	}
	for _, id := range catalog.Controls() {
		s.byName[id.Name()] = id
	}

	stream, err := newEventStream(r)
	if err != nil {
		return nil, err
	}

	if err := s.parse(&cursor{stream: stream}); err != nil {
		return nil, err
	}

	s.valid = true
	return s, nil
}

// Valid reports whether compilation succeeded. An invalid script must not be
// queried.
func (s *Script) Valid() bool { return s != nil && s.valid }

// ControlsForFrame returns the scripted control set for a frame index, or a
// fresh empty set when the frame is not scripted. Absence of a scripted
// frame is normal, never an error.
func (s *Script) ControlsForFrame(frame uint) controls.List {
	if l, ok := s.frames[frame]; ok {
		return l
	}
	return controls.List{}
}

// Frames returns the scripted frame indices in ascending order.
func (s *Script) Frames() []uint {
	frames := make([]uint, 0, len(s.frames))
	for f := range s.frames {
		frames = append(frames, f)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })
	return frames
}

// parse walks the whole event stream depth-first. The document must be a
// single top-level mapping; "frames" is its only recognized section.
func (s *Script) parse(c *cursor) error {
	if _, err := c.next(EventStreamStart); err != nil {
		return err
	}
	if _, err := c.next(EventDocumentStart); err != nil {
		return err
	}
	if _, err := c.next(EventMappingStart); err != nil {
		return err
	}

	for {
		ev, err := c.next(EventNone)
		if err != nil {
			return err
		}

		switch ev.Kind {
		case EventMappingEnd:
			return nil
		case EventScalar:
			if ev.Value != "frames" {
				return &ParseError{
					Line:   ev.Line,
					Column: ev.Column,
					Reason: fmt.Sprintf("unsupported section %q", ev.Value),
				}
			}
			if err := s.parseFrames(c); err != nil {
				return err
			}
		default:
			return &ParseError{
				Line:     ev.Line,
				Column:   ev.Column,
				Expected: EventScalar.String(),
				Got:      ev.Kind.String(),
			}
		}
	}
}

// parseFrames consumes the frames sequence, one frame mapping per entry.
func (s *Script) parseFrames(c *cursor) error {
	if _, err := c.next(EventSequenceStart); err != nil {
		return err
	}

	for {
		ev, err := c.next(EventNone)
		if err != nil {
			return err
		}
		if ev.Kind == EventSequenceEnd {
			return nil
		}
		if err := s.parseFrame(c, ev); err != nil {
			return err
		}
	}
}

// parseFrame consumes one frame entry: a single-key mapping whose key is the
// frame index and whose value is the controls mapping. A repeated frame
// index replaces the earlier entry.
func (s *Script) parseFrame(c *cursor, ev Event) error {
	if ev.Kind != EventMappingStart {
		return &ParseError{
			Line:     ev.Line,
			Column:   ev.Column,
			Expected: EventMappingStart.String(),
			Got:      ev.Kind.String(),
		}
	}

	key, err := c.scalar()
	if err != nil {
		return err
	}
	frame := parseFrameIndex(key)

	if _, err := c.next(EventMappingStart); err != nil {
		return err
	}

	list := controls.List{}
	for {
		ev, err := c.next(EventNone)
		if err != nil {
			return err
		}
		if ev.Kind == EventMappingEnd {
			break
		}
		if err := s.parseControl(c, ev, list); err != nil {
			return err
		}
	}

	s.frames[frame] = list

	if _, err := c.next(EventMappingEnd); err != nil {
		return err
	}
	return nil
}

// parseControl consumes one name/value pair of the controls mapping. A
// control name the catalog does not carry aborts the whole compilation.
func (s *Script) parseControl(c *cursor, ev Event, list controls.List) error {
	if ev.Kind != EventScalar {
		return &ParseError{
			Line:     ev.Line,
			Column:   ev.Column,
			Expected: EventScalar.String(),
			Got:      ev.Kind.String(),
		}
	}

	name := ev.Value
	id, ok := s.byName[name]
	if !ok {
		return &ParseError{
			Line:   ev.Line,
			Column: ev.Column,
			Reason: fmt.Sprintf("unsupported control %q", name),
		}
	}

	text, err := c.scalar()
	if err != nil {
		return err
	}

	value, err := Decode(id.Type(), text)
	if err != nil {
		// Best-effort decode: keep the empty value and carry on.
		s.logger.Warn().
			Str("control", id.Name()).
			Str("type", id.Type().String()).
			Str("value", text).
			Msg("Unsupported control value representation")
	}
	list.Set(id, value)
	return nil
}

// parseFrameIndex parses a decimal frame index. Text that does not parse as
// a non-negative integer yields frame 0, matching the lenient numeric
// handling of control values.
func parseFrameIndex(text string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
