package script

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EventKind identifies a structural parse event.
type EventKind int

const (
	// EventNone matches any event kind in cursor assertions.
	EventNone EventKind = iota

	EventStreamStart
	EventStreamEnd
	EventDocumentStart
	EventDocumentEnd
	EventMappingStart
	EventMappingEnd
	EventSequenceStart
	EventSequenceEnd
	EventScalar
	EventAlias
)

// String returns the human-readable event kind name used in diagnostics.
func (k EventKind) String() string {
	switch k {
	case EventStreamStart:
		return "stream-start"
	case EventStreamEnd:
		return "stream-end"
	case EventDocumentStart:
		return "document-start"
	case EventDocumentEnd:
		return "document-end"
	case EventMappingStart:
		return "mapping-start"
	case EventMappingEnd:
		return "mapping-end"
	case EventSequenceStart:
		return "sequence-start"
	case EventSequenceEnd:
		return "sequence-end"
	case EventScalar:
		return "scalar"
	case EventAlias:
		return "alias"
	}
	return "[kind " + strconv.Itoa(int(k)) + "]"
}

// Event is one structural parse event with its source position. Value holds
// the decoded scalar text for EventScalar events only.
type Event struct {
	Kind   EventKind
	Value  string
	Line   int
	Column int
}

// eventStream is a pull-based source of parse events, linearized depth-first
// from a YAML document. The YAML tokenizer itself stays a black box: any
// low-level syntax failure surfaces as a single error when the stream is
// opened.
type eventStream struct {
	events []Event
	next   int
}

// newEventStream reads one YAML document from r and linearizes it.
func newEventStream(r io.Reader) (*eventStream, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}

	s := &eventStream{}
	s.emit(EventStreamStart, &doc)
	s.flatten(&doc)
	s.emit(EventStreamEnd, &doc)
	return s, nil
}

// Next returns the next event, or false when the stream is exhausted.
func (s *eventStream) Next() (Event, bool) {
	if s.next >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.next]
	s.next++
	return ev, true
}

func (s *eventStream) emit(kind EventKind, n *yaml.Node) {
	s.events = append(s.events, Event{
		Kind:   kind,
		Line:   n.Line,
		Column: n.Column,
	})
}

// flatten appends the events for n and its children in document order. End
// events carry the position of their opening node.
func (s *eventStream) flatten(n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		s.emit(EventDocumentStart, n)
		for _, child := range n.Content {
			s.flatten(child)
		}
		s.emit(EventDocumentEnd, n)
	case yaml.MappingNode:
		s.emit(EventMappingStart, n)
		for _, child := range n.Content {
			s.flatten(child)
		}
		s.emit(EventMappingEnd, n)
	case yaml.SequenceNode:
		s.emit(EventSequenceStart, n)
		for _, child := range n.Content {
			s.flatten(child)
		}
		s.emit(EventSequenceEnd, n)
	case yaml.ScalarNode:
		s.events = append(s.events, Event{
			Kind:   EventScalar,
			Value:  n.Value,
			Line:   n.Line,
			Column: n.Column,
		})
	case yaml.AliasNode:
		s.emit(EventAlias, n)
	}
}
