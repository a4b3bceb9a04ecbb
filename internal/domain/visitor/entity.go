package visitor

import (
	"time"

	"github.com/Emalachi/lazersolution/internal/domain/lead"
)

// Log is one append-only page-visit record. Logs are display-only and
// never mutated by the rest of the system.
type Log struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Path      string        `json:"path"`
	Metadata  lead.Metadata `json:"metadata"`
	Duration  int           `json:"duration,omitempty"` // seconds spent, when reported
}
