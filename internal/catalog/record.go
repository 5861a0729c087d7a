package catalog

import (
	"time"

	"reclaim/internal/risk"
)

// Outcome tags what ultimately happened to a record's file during a
// session. Records are never removed from the catalog; the tag makes
// them historical entries for the final report.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeMoved
	OutcomeMoveFailed
	OutcomeKept
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeMoveFailed:
		return "move-failed"
	case OutcomeKept:
		return "kept"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// FileRecord represents one large file discovered during a scan. Path,
// sizes, timestamps and the risk triple are fixed at build time; only
// Outcome and Err change afterwards, and only the session changes them.
type FileRecord struct {
	Path           string
	Size           int64
	SizeText       string // Rendered once at build time, never recomputed
	ModTime        time.Time
	AccessTime     time.Time
	Location       string // Originating search-location label
	Tier           risk.Tier
	Reason         string
	Recommendation string

	Outcome Outcome
	Err     string // Human-readable failure attached by the session
}
