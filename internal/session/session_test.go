package session

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"reclaim/internal/catalog"
	"reclaim/internal/risk"
	"reclaim/internal/units"
)

type fakeMover struct {
	Calls []string
	Err   error
}

func (f *fakeMover) Move(path string) error {
	f.Calls = append(f.Calls, path)
	return f.Err
}

type fakeRecorder struct {
	Actions []Action
	Paths   []string
}

func (f *fakeRecorder) Record(rec catalog.FileRecord, action Action) error {
	f.Actions = append(f.Actions, action)
	f.Paths = append(f.Paths, rec.Path)
	return nil
}

func record(path string, size int64, tier risk.Tier) catalog.FileRecord {
	return catalog.FileRecord{
		Path:     path,
		Size:     size,
		SizeText: units.Format(size),
		Tier:     tier,
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"", CmdDefault},
		{"  ", CmdDefault},
		{"y", CmdYes},
		{"YES", CmdYes},
		{"n", CmdNo},
		{"No", CmdNo},
		{"s", CmdSkip},
		{"skip", CmdSkip},
		{"i", CmdInfo},
		{"info", CmdInfo},
		{"o", CmdOpen},
		{"open", CmdOpen},
		{"q", CmdQuit},
		{"Quit", CmdQuit},
		{"maybe", CmdUnknown},
		{"yess", CmdUnknown},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.raw); got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultCommand(t *testing.T) {
	tests := []struct {
		tier risk.Tier
		want Command
	}{
		{risk.VerySafe, CmdYes},
		{risk.ProbablySafe, CmdYes},
		{risk.Dangerous, CmdNo},
		{risk.NeedsReview, CmdInfo},
		{risk.Unknown, CmdInfo},
	}
	for _, tt := range tests {
		if got := DefaultCommand(tt.tier); got != tt.want {
			t.Errorf("DefaultCommand(%v) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		cmd  Command
		want State
	}{
		{CmdYes, StateDeleting},
		{CmdNo, StateKeeping},
		{CmdSkip, StateSkipping},
		{CmdInfo, StateInspecting},
		{CmdOpen, StateBrowsing},
		{CmdQuit, StateTerminated},
		{CmdUnknown, StatePresenting},
	}
	for _, tt := range tests {
		if got := Transition(tt.cmd); got != tt.want {
			t.Errorf("Transition(%v) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestAllDefaultOutcomes(t *testing.T) {
	records := []catalog.FileRecord{
		record("/tmp/cache.db", 200<<20, risk.VerySafe),
		record("/Applications/Foo.app/bin", 50<<20, risk.Dangerous),
		record("/weird/blob", 30<<20, risk.Unknown),
	}
	mover := &fakeMover{}
	s := New(&bytes.Buffer{}, AutoInput{}, mover)

	sum := s.Run(records)

	if records[0].Outcome != catalog.OutcomeMoved {
		t.Errorf("very-safe record outcome = %v, want moved", records[0].Outcome)
	}
	if records[1].Outcome != catalog.OutcomeKept {
		t.Errorf("dangerous record outcome = %v, want kept", records[1].Outcome)
	}
	if records[2].Outcome != catalog.OutcomeKept {
		t.Errorf("unknown record outcome = %v, want kept", records[2].Outcome)
	}
	if sum.Moved != 1 || sum.Kept != 2 || sum.Skipped != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.BytesFreed != 200<<20 {
		t.Errorf("bytes freed = %d, want %d", sum.BytesFreed, 200<<20)
	}
	if s.State() != StateDone {
		t.Errorf("final state = %v, want done", s.State())
	}
}

func TestQuitHaltsRemainingRecords(t *testing.T) {
	records := []catalog.FileRecord{
		record("/a", 5<<20, risk.VerySafe),
		record("/b", 4<<20, risk.VerySafe),
		record("/c", 3<<20, risk.VerySafe),
		record("/d", 2<<20, risk.VerySafe),
		record("/e", 1<<20, risk.VerySafe),
	}
	mover := &fakeMover{}
	rec := &fakeRecorder{}
	input := &ScriptedInput{Commands: []Command{CmdYes, CmdQuit}}
	s := New(&bytes.Buffer{}, input, mover, WithRecorder(rec))

	sum := s.Run(records)

	if sum.Moved != 1 || sum.Kept != 0 || sum.Skipped != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(rec.Actions) != 1 {
		t.Fatalf("history rows = %d, want 1", len(rec.Actions))
	}
	for i := 2; i < 5; i++ {
		if records[i].Outcome != catalog.OutcomePending {
			t.Errorf("record %d touched after quit: %v", i, records[i].Outcome)
		}
	}
	if s.State() != StateTerminated {
		t.Errorf("final state = %v, want terminated", s.State())
	}
}

func TestUnknownInputRePrompts(t *testing.T) {
	records := []catalog.FileRecord{record("/a", 1<<20, risk.VerySafe)}
	out := &bytes.Buffer{}
	input := &ScriptedInput{Commands: []Command{CmdUnknown, CmdUnknown, CmdYes}}
	s := New(out, input, &fakeMover{})

	sum := s.Run(records)
	if sum.Moved != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if n := strings.Count(out.String(), "please answer"); n != 2 {
		t.Fatalf("re-prompt count = %d, want 2", n)
	}
}

func TestMoveFailureKeepsRecord(t *testing.T) {
	records := []catalog.FileRecord{record("/a", 1<<20, risk.VerySafe)}
	mover := &fakeMover{Err: errors.New("permission denied")}
	rec := &fakeRecorder{}
	s := New(&bytes.Buffer{}, &ScriptedInput{Commands: []Command{CmdYes}}, mover, WithRecorder(rec))

	sum := s.Run(records)

	if sum.Moved != 0 || sum.Kept != 1 || sum.BytesFreed != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if records[0].Outcome != catalog.OutcomeMoveFailed {
		t.Fatalf("outcome = %v, want move-failed", records[0].Outcome)
	}
	if records[0].Err == "" {
		t.Fatal("error message not attached to record")
	}
	if len(rec.Actions) != 1 || rec.Actions[0] != ActionMoveFailed {
		t.Fatalf("history actions = %v", rec.Actions)
	}
}

func TestDryRunNeverCallsMover(t *testing.T) {
	records := []catalog.FileRecord{
		record("/a", 10<<20, risk.VerySafe),
		record("/b", 5<<20, risk.VerySafe),
	}
	mover := &fakeMover{}
	rec := &fakeRecorder{}
	s := New(&bytes.Buffer{}, AutoInput{}, mover, WithDryRun(true), WithRecorder(rec))

	sum := s.Run(records)

	if len(mover.Calls) != 0 {
		t.Fatalf("mover called during dry run: %v", mover.Calls)
	}
	if sum.Moved != 2 || sum.BytesFreed != 15<<20 {
		t.Fatalf("summary = %+v", sum)
	}
	for _, a := range rec.Actions {
		if a != ActionDryRun {
			t.Fatalf("history action = %v, want DRY_RUN", a)
		}
	}
}

func TestSkipCounted(t *testing.T) {
	records := []catalog.FileRecord{record("/a", 1<<20, risk.VerySafe)}
	s := New(&bytes.Buffer{}, &ScriptedInput{Commands: []Command{CmdSkip}}, &fakeMover{})

	sum := s.Run(records)
	if sum.Skipped != 1 || sum.Moved != 0 || sum.Kept != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if records[0].Outcome != catalog.OutcomeSkipped {
		t.Fatalf("outcome = %v", records[0].Outcome)
	}
}

func TestOpenBrowsesAndRePrompts(t *testing.T) {
	records := []catalog.FileRecord{record("/Users/amy/Downloads/big.iso", 1<<30, risk.NeedsReview)}
	browser := &FakeBrowser{}
	input := &ScriptedInput{Commands: []Command{CmdOpen, CmdNo}}
	s := New(&bytes.Buffer{}, input, &fakeMover{}, WithBrowser(browser))

	sum := s.Run(records)
	if len(browser.Opened) != 1 || browser.Opened[0] != "/Users/amy/Downloads/big.iso" {
		t.Fatalf("browser calls = %v", browser.Opened)
	}
	if sum.Kept != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestInterruptTerminates(t *testing.T) {
	records := []catalog.FileRecord{
		record("/a", 1<<20, risk.Dangerous),
		record("/b", 1<<20, risk.Dangerous),
	}
	interrupt := make(chan os.Signal, 1)
	interrupt <- os.Interrupt

	blocked := &ScriptedInput{} // exhausted script also quits, so no race on the select
	s := New(&bytes.Buffer{}, blocked, &fakeMover{}, WithInterrupt(interrupt))

	sum := s.Run(records)
	if sum.Moved != 0 && sum.Kept != 0 && sum.Skipped != 0 {
		t.Fatalf("summary after interrupt = %+v", sum)
	}
	if s.State() != StateTerminated {
		t.Fatalf("state = %v, want terminated", s.State())
	}
}

func TestScriptedExhaustionQuits(t *testing.T) {
	records := []catalog.FileRecord{record("/a", 1<<20, risk.VerySafe)}
	s := New(&bytes.Buffer{}, &ScriptedInput{}, &fakeMover{})

	s.Run(records)
	if s.State() != StateTerminated {
		t.Fatalf("state = %v, want terminated", s.State())
	}
}
