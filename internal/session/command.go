package session

import (
	"strings"

	"reclaim/internal/risk"
)

// Command is a parsed operator response to a file prompt.
type Command int

const (
	CmdDefault Command = iota // empty response, apply tier default
	CmdYes
	CmdNo
	CmdSkip
	CmdInfo
	CmdOpen
	CmdQuit
	CmdUnknown
)

func (c Command) String() string {
	switch c {
	case CmdDefault:
		return "default"
	case CmdYes:
		return "yes"
	case CmdNo:
		return "no"
	case CmdSkip:
		return "skip"
	case CmdInfo:
		return "info"
	case CmdOpen:
		return "open"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseCommand accepts single-letter or full-word forms,
// case-insensitive. An empty response is the press-Enter-for-default
// shortcut; anything unrecognized is CmdUnknown and re-prompts.
func ParseCommand(raw string) Command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return CmdDefault
	case "y", "yes":
		return CmdYes
	case "n", "no":
		return CmdNo
	case "s", "skip":
		return CmdSkip
	case "i", "info":
		return CmdInfo
	case "o", "open":
		return CmdOpen
	case "q", "quit":
		return CmdQuit
	default:
		return CmdUnknown
	}
}

// DefaultCommand derives the suggested action from the risk tier:
// safe tiers delete, dangerous keeps, and anything needing judgment
// asks for an inspection first.
func DefaultCommand(tier risk.Tier) Command {
	switch tier {
	case risk.VerySafe, risk.ProbablySafe:
		return CmdYes
	case risk.Dangerous:
		return CmdNo
	default:
		return CmdInfo
	}
}
