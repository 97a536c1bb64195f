package report

import "github.com/phyten/aliasfix/internal/model"

// Kind identifies what an Event carries.
type Kind int

const (
	KindFile Kind = iota
	KindOccurrence
	KindChange
	KindError
	KindSummary
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindOccurrence:
		return "occurrence"
	case KindChange:
		return "change"
	case KindError:
		return "error"
	case KindSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Event は実行中に報告される 1 件の出来事です。Kind に応じたフィールドだけが意味を持ちます。
type Event struct {
	Kind Kind
	File string

	// KindOccurrence
	Occurrence model.Occurrence
	Line       string

	// KindChange
	Change model.Change

	// KindError
	Stage   string
	Message string

	// KindSummary
	Summary Summary
}

// Summary closes a run.
type Summary struct {
	Mode        string
	Files       int
	Occurrences int
	Changes     int
	Changed     int
	Errors      int
	DryRun      bool
	BackupDir   string
}

// Sink receives events in the order they happen.
type Sink interface {
	Emit(Event) error
	Close() error
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) error { return nil }
func (discard) Close() error     { return nil }

// Recorder keeps events in memory.
type Recorder struct {
	Events []Event
	Closed bool
}

func (r *Recorder) Emit(ev Event) error {
	r.Events = append(r.Events, ev)
	return nil
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}

// OfKind returns the recorded events of kind k.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

// Multi fans events out to every sink. The first error wins but every sink
// still sees the event.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

type multi []Sink

func (m multi) Emit(ev Event) error {
	var first error
	for _, s := range m {
		if err := s.Emit(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m multi) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
