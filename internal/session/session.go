package session

import (
	"fmt"
	"io"
	"log"
	"os"

	"reclaim/internal/catalog"
	"reclaim/internal/risk"
	"reclaim/internal/units"
)

// Action is the audited outcome label for a resolved record.
type Action string

const (
	ActionMove       Action = "MOVE"
	ActionMoveFailed Action = "MOVE_FAILED"
	ActionKeep       Action = "KEEP"
	ActionSkip       Action = "SKIP"
	ActionDryRun     Action = "DRY_RUN"
)

// Mover performs the reversible removal of a single file.
type Mover interface {
	Move(path string) error
}

// Recorder persists one resolved record. A nil Recorder disables the
// audit trail; recording failures are logged and never interrupt the
// session.
type Recorder interface {
	Record(rec catalog.FileRecord, action Action) error
}

// Summary accumulates per-session counters. Mutated only by the
// session; read once at the end for reporting.
type Summary struct {
	Moved      int
	BytesFreed int64
	Skipped    int
	Kept       int
}

// Session drives the per-file prompt loop over a catalog. Strictly
// sequential: one record is fully resolved before the next is shown.
type Session struct {
	out       io.Writer
	input     Input
	browser   Browser
	mover     Mover
	recorder  Recorder
	logger    *log.Logger
	interrupt <-chan os.Signal
	dryRun    bool

	state State
}

type Option func(*Session)

func WithBrowser(b Browser) Option            { return func(s *Session) { s.browser = b } }
func WithRecorder(r Recorder) Option          { return func(s *Session) { s.recorder = r } }
func WithLogger(l *log.Logger) Option         { return func(s *Session) { s.logger = l } }
func WithInterrupt(ch <-chan os.Signal) Option { return func(s *Session) { s.interrupt = ch } }
func WithDryRun(on bool) Option               { return func(s *Session) { s.dryRun = on } }

func New(out io.Writer, input Input, mover Mover, opts ...Option) *Session {
	s := &Session{
		out:     out,
		input:   input,
		browser: OSBrowser{},
		mover:   mover,
		state:   StatePresenting,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// Run resolves every record in order until the catalog is exhausted or
// the operator quits. Records are mutated in place with their outcome;
// records after a quit stay pending and appear in no tally.
func (s *Session) Run(records []catalog.FileRecord) Summary {
	var sum Summary
	s.state = StatePresenting

	for i := range records {
		rec := &records[i]
		s.present(rec, i+1, len(records))

		inspected := false
		for s.state == StatePresenting {
			cmd := s.readCommand()
			if cmd == CmdDefault {
				cmd = DefaultCommand(rec.Tier)
				if cmd == CmdInfo && inspected {
					// Info already shown for this record; the next
					// accepted default resolves to keep.
					cmd = CmdNo
				}
			}
			s.state = Transition(cmd)

			switch s.state {
			case StateDeleting:
				s.deleteRecord(rec, &sum)
			case StateKeeping:
				rec.Outcome = catalog.OutcomeKept
				sum.Kept++
				s.record(*rec, ActionKeep)
			case StateSkipping:
				rec.Outcome = catalog.OutcomeSkipped
				sum.Skipped++
				s.record(*rec, ActionSkip)
			case StateInspecting:
				s.showInfo(rec)
				inspected = true
				s.state = StatePresenting
			case StateBrowsing:
				if err := s.browser.Open(rec.Path); err != nil {
					fmt.Fprintf(s.out, "  could not open directory: %v\n", err)
				}
				fmt.Fprintf(s.out, "  delete? (yes/no/skip/info/quit): ")
				s.state = StatePresenting
			case StateTerminated:
				return sum
			case StatePresenting:
				fmt.Fprintln(s.out, "  please answer yes, no, skip, info, open or quit")
			}
		}
		s.state = StatePresenting
	}
	s.state = StateDone
	return sum
}

// readCommand waits for operator input, racing it against the
// interrupt signal. An interrupt is equivalent to quit.
func (s *Session) readCommand() Command {
	type result struct {
		cmd Command
		err error
	}
	ch := make(chan result, 1)
	go func() {
		cmd, err := s.input.ReadCommand()
		ch <- result{cmd, err}
	}()
	select {
	case <-s.interrupt:
		fmt.Fprintln(s.out)
		return CmdQuit
	case r := <-ch:
		if r.err != nil {
			return CmdQuit
		}
		return r.cmd
	}
}

func (s *Session) deleteRecord(rec *catalog.FileRecord, sum *Summary) {
	if s.dryRun {
		fmt.Fprintf(s.out, "  would move to trash: %s\n", rec.Path)
		rec.Outcome = catalog.OutcomeMoved
		sum.Moved++
		sum.BytesFreed += rec.Size
		s.record(*rec, ActionDryRun)
		return
	}
	if err := s.mover.Move(rec.Path); err != nil {
		fmt.Fprintf(s.out, "  move failed, keeping file: %v\n", err)
		rec.Outcome = catalog.OutcomeMoveFailed
		rec.Err = err.Error()
		sum.Kept++
		s.record(*rec, ActionMoveFailed)
		return
	}
	fmt.Fprintf(s.out, "  moved to trash (%s freed)\n", rec.SizeText)
	rec.Outcome = catalog.OutcomeMoved
	sum.Moved++
	sum.BytesFreed += rec.Size
	s.record(*rec, ActionMove)
}

func (s *Session) record(rec catalog.FileRecord, action Action) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(rec, action); err != nil && s.logger != nil {
		s.logger.Printf("session: history record failed for %s: %v", rec.Path, err)
	}
}

func (s *Session) present(rec *catalog.FileRecord, pos, total int) {
	fmt.Fprintf(s.out, "\n[%d/%d] %s\n", pos, total, rec.Path)
	fmt.Fprintf(s.out, "  size: %s   risk: %s\n", rec.SizeText, rec.Tier.Label())
	fmt.Fprintf(s.out, "  %s — %s\n", rec.Reason, rec.Recommendation)
	fmt.Fprintf(s.out, "  delete? [%s] (yes/no/skip/info/open/quit): ", defaultHint(rec.Tier))
}

func (s *Session) showInfo(rec *catalog.FileRecord) {
	fmt.Fprintf(s.out, "  location: %s\n", rec.Location)
	fmt.Fprintf(s.out, "  size:     %s (%d bytes)\n", rec.SizeText, rec.Size)
	fmt.Fprintf(s.out, "  modified: %s\n", rec.ModTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(s.out, "  accessed: %s\n", rec.AccessTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(s.out, "  delete? (yes/no/skip/open/quit): ")
}

func defaultHint(tier risk.Tier) string {
	switch DefaultCommand(tier) {
	case CmdYes:
		return "yes"
	case CmdNo:
		return "no"
	default:
		return "info"
	}
}

// Report renders the final counters.
func (s *Session) Report(sum Summary) {
	fmt.Fprintf(s.out, "\nCleanup summary\n")
	fmt.Fprintf(s.out, "  moved to trash: %d\n", sum.Moved)
	fmt.Fprintf(s.out, "  space freed:    %s\n", units.Format(sum.BytesFreed))
	fmt.Fprintf(s.out, "  skipped:        %d\n", sum.Skipped)
	fmt.Fprintf(s.out, "  kept:           %d\n", sum.Kept)
	if s.dryRun {
		fmt.Fprintf(s.out, "  (dry run: nothing was actually moved)\n")
	}
}
