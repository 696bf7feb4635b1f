package game

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
)

// Event is one recorded session event.
type Event struct {
	Tick     int
	Session  string  // short session id
	Category string  // maze, state, input, collision, mode, canvas, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[T=00042] 1f3a9c2e state     won            exit reached
func (e Event) String() string {
	return fmt.Sprintf("[T=%05d] %-8s %-9s %-14s %s",
		e.Tick, e.Session, e.Category, e.Key, e.Value)
}

// EventLog collects structured events from a session. It is unbounded and
// machine-readable; hosts that want a bounded on-screen view keep their own
// ring buffer fed from Since.
type EventLog struct {
	entries []Event
	verbose bool
	mirror  *log.Logger
}

// NewEventLog creates an EventLog. If verbose is true, per-tick movement
// entries are recorded as well.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Mirror copies every future entry to l. A nil logger stops mirroring.
func (el *EventLog) Mirror(l *log.Logger) *EventLog {
	el.mirror = l
	return el
}

// Add records a new entry.
func (el *EventLog) Add(tick int, session, category, key, value string, numVal float64) {
	e := Event{
		Tick:     tick,
		Session:  session,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	el.entries = append(el.entries, e)
	if el.mirror != nil {
		el.mirror.Print(e.String())
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, session, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, session, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (el *EventLog) Verbose() bool {
	return el.verbose
}

// Len returns the number of recorded entries.
func (el *EventLog) Len() int {
	return len(el.entries)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Since returns the entries recorded after the first n.
func (el *EventLog) Since(n int) []Event {
	if n < 0 {
		n = 0
	}
	if n >= len(el.entries) {
		return nil
	}
	return el.entries[n:]
}

// Query selects log entries. Empty fields match anything and Value matches
// as a substring.
type Query struct {
	Category string
	Key      string
	Value    string
}

// Match reports whether e satisfies q.
func (q Query) Match(e Event) bool {
	return (q.Category == "" || e.Category == q.Category) &&
		(q.Key == "" || e.Key == q.Key) &&
		(q.Value == "" || strings.Contains(e.Value, q.Value))
}

// Scan walks the log once, returning how many entries match q and the newest
// of them.
func (el *EventLog) Scan(q Query) (n int, last Event) {
	for _, e := range el.entries {
		if q.Match(e) {
			n++
			last = e
		}
	}
	return n, last
}

// Count returns how many entries match category and key.
func (el *EventLog) Count(category, key string) int {
	n, _ := el.Scan(Query{Category: category, Key: key})
	return n
}

// LastOf returns the newest entry matching category and key.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	n, last := el.Scan(Query{Category: category, Key: key})
	return last, n > 0
}

// HasEntry reports whether any entry matches category and key with a Value
// containing valueSubstr.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	q := Query{Category: category, Key: key, Value: valueSubstr}
	return slices.ContainsFunc(el.entries, q.Match)
}

// Breakdown counts the entries matching category and key by their Value,
// e.g. resets by cause.
func (el *EventLog) Breakdown(category, key string) map[string]int {
	q := Query{Category: category, Key: key}
	out := map[string]int{}
	for _, e := range el.entries {
		if q.Match(e) {
			out[e.Value]++
		}
	}
	return out
}

// WriteTo writes one formatted line per entry.
func (el *EventLog) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range el.entries {
		n, err := fmt.Fprintln(w, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the whole log, one line per entry.
func (el *EventLog) String() string {
	var sb strings.Builder
	el.WriteTo(&sb)
	return sb.String()
}
