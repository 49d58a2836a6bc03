package game

import "strings"

// EventPriority controls the color of an entry in the flight feed.
type EventPriority uint8

const (
	EventInfo     EventPriority = iota // cyan
	EventBonus                         // green
	EventWarning                       // yellow
	EventCritical                      // red
)

// Event is a single entry in the flight feed.
type Event struct {
	Text     string
	Priority EventPriority
}

// EventLog is a bounded FIFO of flight events.
type EventLog struct {
	entries []Event
	maxSize int
}

// NewEventLog creates a log keeping the most recent maxSize entries.
func NewEventLog(maxSize int) *EventLog {
	return &EventLog{
		entries: make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an event, evicting the oldest when full. Entries longer
// than the feed panel are wrapped onto extra lines.
func (l *EventLog) Add(text string, priority EventPriority) {
	const maxWidth = 40
	for _, line := range wrapText(text, maxWidth) {
		if len(l.entries) >= l.maxSize {
			copy(l.entries, l.entries[1:])
			l.entries[len(l.entries)-1] = Event{Text: line, Priority: priority}
		} else {
			l.entries = append(l.entries, Event{Text: line, Priority: priority})
		}
	}
}

// Recent returns the last n events, or fewer if the log is shorter.
func (l *EventLog) Recent(n int) []Event {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}

// Len returns the number of stored entries.
func (l *EventLog) Len() int { return len(l.entries) }

// wrapText splits text into lines no longer than maxWidth.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}
