package risk

// Rule matches a lower-cased path substring and carries the policy text
// shown to the operator when it fires.
type Rule struct {
	Pattern        string
	Reason         string
	Recommendation string
}

// RuleSet is the ordered pattern table embodying the acceptable-risk
// policy. Tiers are evaluated in the fixed precedence returned by
// Precedence; within a tier the first matching pattern wins. The set is
// built once at startup and never mutated afterwards.
type RuleSet struct {
	rules map[Tier][]Rule
}

// Precedence is the fixed tier evaluation order. A path matching both a
// dangerous pattern and a safe pattern must resolve to Dangerous, so
// this list is policy, not an implementation detail.
func Precedence() []Tier {
	return []Tier{Dangerous, NeedsReview, ProbablySafe, VerySafe}
}

// DefaultRuleSet returns the built-in pattern tables. Patterns and tier
// membership are versioned policy data and must not be reordered.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{rules: map[Tier][]Rule{
		Dangerous: {
			{"/system/", "system file", "DANGEROUS - do not delete"},
			{"/usr/", "system file", "DANGEROUS - do not delete"},
			{"/bin/", "system binary", "DANGEROUS - do not delete"},
			{"/sbin/", "system binary", "DANGEROUS - do not delete"},
			{".app/", "application bundle", "DANGEROUS - active application"},
			{".framework/", "framework", "DANGEROUS - system framework"},
			{"system.log", "active log", "DANGEROUS - log is in use"},
			{"/library/frameworks/", "system framework", "DANGEROUS - do not delete"},
		},
		NeedsReview: {
			{"/downloads/", "downloaded file", "NEEDS REVIEW - may still matter"},
			{"/documents/", "document", "NEEDS REVIEW - likely an important document"},
			{"/desktop/", "desktop file", "NEEDS REVIEW - file on desktop"},
			{".mov", "video file", "NEEDS REVIEW - may be an important video"},
			{".mp4", "video file", "NEEDS REVIEW - may be an important video"},
			{".mkv", "video file", "NEEDS REVIEW - may be an important video"},
			{".avi", "video file", "NEEDS REVIEW - may be an important video"},
			{".iso", "disk image", "NEEDS REVIEW - may be an important backup"},
		},
		ProbablySafe: {
			{".dmg", "disk image", "PROBABLY SAFE - installer already applied"},
			{".pkg", "package file", "PROBABLY SAFE - installer already applied"},
			{".zip", "archive file", "PROBABLY SAFE - check the contents first"},
			{".rar", "archive file", "PROBABLY SAFE - check the contents first"},
			{".tar", "archive file", "PROBABLY SAFE - check the contents first"},
			{" (1)", "duplicate file", "PROBABLY SAFE - likely a duplicate"},
			{" copy", "copied file", "PROBABLY SAFE - likely a duplicate"},
			{"/.trashes/", "trashed file", "PROBABLY SAFE - already in a trash"},
		},
		VerySafe: {
			{"/cache/", "cache file", "VERY SAFE - normally regenerated"},
			{"/caches/", "cache file", "VERY SAFE - normally regenerated"},
			{".cache", "cache file", "VERY SAFE - normally regenerated"},
			{"/tmp/", "temporary file", "VERY SAFE - temporary data"},
			{"/temp/", "temporary file", "VERY SAFE - temporary data"},
			{".tmp", "temporary file", "VERY SAFE - temporary data"},
			{".log.", "rotated log file", "VERY SAFE - old log data"},
		},
	}}
}

// Extend returns a copy of the set with extra rules appended after the
// built-ins of their tier, preserving first-match-wins within a tier.
func (rs *RuleSet) Extend(tier Tier, extra ...Rule) *RuleSet {
	out := &RuleSet{rules: make(map[Tier][]Rule, len(rs.rules))}
	for t, rules := range rs.rules {
		out.rules[t] = append([]Rule(nil), rules...)
	}
	out.rules[tier] = append(out.rules[tier], extra...)
	return out
}

// Rules returns the ordered rule list for a tier.
func (rs *RuleSet) Rules(tier Tier) []Rule {
	return rs.rules[tier]
}
