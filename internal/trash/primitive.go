// Package trash sends files to the system trash, falling back to a
// plain move into the trash directory when no trash helper is
// installed. Files are never unlinked; recovery stays possible through
// the trash itself.
package trash

import (
	"fmt"
	"os/exec"
)

// Primitive is the system-trash integration point. The real
// implementation shells out to a helper binary; tests substitute a
// fake to observe calls.
type Primitive interface {
	Name() string
	Available() bool
	Trash(path string) error
}

// CommandPrimitive drives an external trash helper such as the
// Homebrew `trash` utility.
type CommandPrimitive struct {
	Command string
}

func NewCommandPrimitive(command string) *CommandPrimitive {
	if command == "" {
		command = "trash"
	}
	return &CommandPrimitive{Command: command}
}

func (p *CommandPrimitive) Name() string { return p.Command }

func (p *CommandPrimitive) Available() bool {
	_, err := exec.LookPath(p.Command)
	return err == nil
}

func (p *CommandPrimitive) Trash(path string) error {
	out, err := exec.Command(p.Command, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", p.Command, path, err, string(out))
	}
	return nil
}

// FakePrimitive records calls for testing.
type FakePrimitive struct {
	Missing bool
	Err     error
	Calls   []string
}

func (f *FakePrimitive) Name() string    { return "fake-trash" }
func (f *FakePrimitive) Available() bool { return !f.Missing }

func (f *FakePrimitive) Trash(path string) error {
	f.Calls = append(f.Calls, path)
	return f.Err
}
