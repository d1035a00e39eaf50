package audit

import (
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names a store operation outcome.
type EventType string

const (
	EventProfileCreate   EventType = "profile.create"
	EventProfileRejected EventType = "profile.create_rejected"
	EventProfileLike     EventType = "profile.like"
	EventLikeIgnored     EventType = "profile.like_ignored"
)

// Event is a single audit entry.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	ProfileID int       `json:"profileId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Likes     int       `json:"likes,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

// Recorder writes events as JSON lines and retains the most recent ones.
type Recorder struct {
	mu      sync.Mutex
	encoder *json.Encoder
	limit   int
	recent  []Event
	now     func() time.Time
}

// NewRecorder returns a Recorder writing to w and keeping up to limit events.
// A nil writer disables the JSON output; limit is clamped to at least 1.
func NewRecorder(w io.Writer, limit int) *Recorder {
	if limit < 1 {
		limit = 1
	}
	r := &Recorder{
		limit:  limit,
		recent: make([]Event, 0, limit),
		now:    func() time.Time { return time.Now().UTC() },
	}
	if w != nil {
		r.encoder = json.NewEncoder(w)
	}
	return r
}

// Record stamps the event with an id and timestamp when missing and stores it.
func (r *Recorder) Record(event Event) Event {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = r.now()
	}

	if len(r.recent) == r.limit {
		copy(r.recent, r.recent[1:])
		r.recent = r.recent[:r.limit-1]
	}
	r.recent = append(r.recent, event)

	if r.encoder != nil {
		if err := r.encoder.Encode(event); err != nil {
			log.Printf("[audit] failed to write event %s: %v", event.ID, err)
		}
	}
	return event
}

// Recent returns retained events, oldest first.
func (r *Recorder) Recent() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.recent))
	copy(out, r.recent)
	return out
}
