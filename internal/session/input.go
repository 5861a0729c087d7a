package session

import (
	"bufio"
	"io"
)

// Input supplies operator commands. The prompt blocks until one is
// available; headless embeddings substitute a policy source instead of
// assuming a human is present.
type Input interface {
	ReadCommand() (Command, error)
}

// PromptInput reads commands line by line from an interactive stream.
// EOF means the operator is gone, which is treated as quit.
type PromptInput struct {
	reader *bufio.Reader
}

func NewPromptInput(r io.Reader) *PromptInput {
	return &PromptInput{reader: bufio.NewReader(r)}
}

func (p *PromptInput) ReadCommand() (Command, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return CmdQuit, nil
	}
	return ParseCommand(line), nil
}

// ScriptedInput replays a fixed command sequence for tests. An
// exhausted script quits so a test can never hang.
type ScriptedInput struct {
	Commands []Command
	pos      int
}

func (s *ScriptedInput) ReadCommand() (Command, error) {
	if s.pos >= len(s.Commands) {
		return CmdQuit, nil
	}
	cmd := s.Commands[s.pos]
	s.pos++
	return cmd, nil
}

// AutoInput always applies the tier default. Used by headless runs.
type AutoInput struct{}

func (AutoInput) ReadCommand() (Command, error) {
	return CmdDefault, nil
}
