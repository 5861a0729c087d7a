package report

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external reporting utility and returns its
// stdout. The inspector treats these tools as data sources; a missing
// or failing tool just blanks out its section.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// ExecRunner runs real commands.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// FakeRunner serves canned outputs keyed by command line.
type FakeRunner struct {
	Outputs map[string]string
}

func (f *FakeRunner) Run(name string, args ...string) (string, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	out, ok := f.Outputs[key]
	if !ok {
		return "", fmt.Errorf("%s: command not found", name)
	}
	return out, nil
}
