package script

import "fmt"

// ParseError describes a structural script failure with its source position.
// Expected/Got carry human-readable event kind names when the failure is an
// event kind mismatch; Reason carries the description otherwise.
type ParseError struct {
	Line     int
	Column   int
	Expected string
	Got      string
	Reason   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("script error on line %d column %d: expected %s event, got %s",
			e.Line, e.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("script error on line %d column %d: %s", e.Line, e.Column, e.Reason)
}

// cursor pulls events one at a time from an event stream. Events are not
// re-peekable, so any kind check must happen at pull time via the expected
// argument.
type cursor struct {
	stream *eventStream
}

// next pulls the next event. When expected is not EventNone and the pulled
// event's kind differs, next returns a ParseError naming the expected and
// actual kinds at the event's position.
func (c *cursor) next(expected EventKind) (Event, error) {
	ev, ok := c.stream.Next()
	if !ok {
		return Event{}, fmt.Errorf("unexpected end of script")
	}

	if expected != EventNone && ev.Kind != expected {
		return Event{}, &ParseError{
			Line:     ev.Line,
			Column:   ev.Column,
			Expected: expected.String(),
			Got:      ev.Kind.String(),
		}
	}

	return ev, nil
}

// scalar pulls the next event, asserts it is a scalar, and returns its text.
func (c *cursor) scalar() (string, error) {
	ev, err := c.next(EventScalar)
	if err != nil {
		return "", err
	}
	return ev.Value, nil
}
