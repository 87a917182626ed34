package main

import "github.com/muntyanw/customer-portal/contracts"

// WidthRuleSet is the single consolidated lookup from worksheet name to its
// width-conversion rule. Unknown systems get the identity rule so that a new
// worksheet is quotable before it is configured; callers learn about the
// fallback through the second return value.
type WidthRuleSet struct {
	rules map[string]contracts.WidthRule
}

func NewWidthRuleSet(config *Config) *WidthRuleSet {
	rules := make(map[string]contracts.WidthRule, len(config.Systems))
	for name, system := range config.Systems {
		rules[name] = system.WidthRule()
	}
	return &WidthRuleSet{rules: rules}
}

func (s *WidthRuleSet) Rule(systemName string) (contracts.WidthRule, bool) {
	rule, ok := s.rules[systemName]
	if !ok {
		rule = contracts.WidthRule{Canonical: contracts.WidthUnitFabric}
	}
	return rule, ok
}

// ToCanonicalWidth maps an entered width to the unit the price table is
// indexed by. The returned bool reports that the default identity rule was
// used because the system is not configured.
func (s *WidthRuleSet) ToCanonicalWidth(systemName string, enteredWidthMm int, enteredUnitIsAlternate bool) (int, bool) {
	rule, known := s.Rule(systemName)

	width := enteredWidthMm
	if enteredUnitIsAlternate {
		width += rule.AlternateOffsetMm
	}
	if width < 0 {
		width = 0
	}

	return width, !known
}
