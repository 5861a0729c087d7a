package risk

import "strings"

// Classification is the result of a risk sweep for one path.
type Classification struct {
	Tier           Tier
	Reason         string
	Recommendation string
}

// Classifier assigns a risk tier to a path by substring match against an
// immutable rule set. It is a total function over any string input and
// never fails; a path matching nothing is Unknown.
type Classifier struct {
	rules *RuleSet
}

func NewClassifier(rules *RuleSet) *Classifier {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Classifier{rules: rules}
}

// Classify sweeps the tiers in fixed precedence order and returns on the
// first matching pattern. Comparison is case-insensitive.
func (c *Classifier) Classify(path string) Classification {
	lower := strings.ToLower(path)

	for _, tier := range Precedence() {
		for _, rule := range c.rules.Rules(tier) {
			if strings.Contains(lower, rule.Pattern) {
				return Classification{
					Tier:           tier,
					Reason:         rule.Reason,
					Recommendation: rule.Recommendation,
				}
			}
		}
	}

	return Classification{
		Tier:           Unknown,
		Reason:         "unknown file type",
		Recommendation: "manual review required",
	}
}
