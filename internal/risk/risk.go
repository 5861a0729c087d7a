package risk

import "github.com/fatih/color"

// Tier is a qualitative deletion-safety classification assigned to a file
// from its path. The order below is display priority only (strongest
// warning first), not a numeric score.
type Tier int

const (
	Dangerous Tier = iota
	NeedsReview
	ProbablySafe
	VerySafe
	Unknown
)

func (t Tier) String() string {
	switch t {
	case Dangerous:
		return "DANGEROUS"
	case NeedsReview:
		return "NEEDS_REVIEW"
	case ProbablySafe:
		return "PROBABLY_SAFE"
	case VerySafe:
		return "VERY_SAFE"
	default:
		return "UNKNOWN"
	}
}

// ParseTier maps a tier name back to its Tier. Unrecognized names map
// to Unknown so configuration typos degrade instead of failing.
func ParseTier(s string) Tier {
	switch s {
	case "DANGEROUS":
		return Dangerous
	case "NEEDS_REVIEW":
		return NeedsReview
	case "PROBABLY_SAFE":
		return ProbablySafe
	case "VERY_SAFE":
		return VerySafe
	default:
		return Unknown
	}
}

var tierColors = map[Tier]*color.Color{
	Dangerous:    color.New(color.FgRed, color.Bold),
	NeedsReview:  color.New(color.FgYellow),
	ProbablySafe: color.New(color.FgHiYellow),
	VerySafe:     color.New(color.FgGreen),
	Unknown:      color.New(color.FgWhite),
}

// Label renders the tier name colorized for terminal display.
func (t Tier) Label() string {
	c, ok := tierColors[t]
	if !ok {
		c = tierColors[Unknown]
	}
	return c.Sprint(t.String())
}
