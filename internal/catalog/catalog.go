package catalog

import (
	"regexp"

	"github.com/clauselens/clauselens/internal/model"
)

// Catalog holds the compiled rule tables shared by the segmenter, classifier
// and risk scorer. Order is significant in every table: the first matching
// type group wins, and risk groups accumulate in listed order. Build one with
// New and share it by reference; it is never mutated after construction.
type Catalog struct {
	boundary []*regexp.Regexp
	types    []TypeGroup
	risk     []RiskGroup
	factors  []FactorDetector

	legalKeywords    []string
	negationWords    []string
	uncertaintyWords []string
	urgencyWords     []string
}

// TypeGroup is one clause-type classification group
type TypeGroup struct {
	Type     model.ClauseType
	Patterns []*regexp.Regexp
}

// RiskGroup is one weighted risk-pattern group
type RiskGroup struct {
	Name     string
	Weight   float64
	Patterns []*regexp.Regexp
}

// FactorDetector is one independently evaluated named risk indicator
type FactorDetector struct {
	Name    string
	Pattern *regexp.Regexp
}

// New compiles the full rule catalog
func New() *Catalog {
	return &Catalog{
		boundary:         compile(boundaryPatterns),
		types:            compileTypeGroups(),
		risk:             compileRiskGroups(),
		factors:          compileFactorDetectors(),
		legalKeywords:    legalKeywords,
		negationWords:    negationWords,
		uncertaintyWords: uncertaintyWords,
		urgencyWords:     urgencyWords,
	}
}

// BoundaryPatterns returns the clause-opening patterns, anchored at the start
// of a candidate sentence
func (c *Catalog) BoundaryPatterns() []*regexp.Regexp { return c.boundary }

// TypeGroups returns the classification groups in priority order
func (c *Catalog) TypeGroups() []TypeGroup { return c.types }

// RiskGroups returns the weighted risk-pattern groups
func (c *Catalog) RiskGroups() []RiskGroup { return c.risk }

// FactorDetectors returns the named risk-factor detectors
func (c *Catalog) FactorDetectors() []FactorDetector { return c.factors }

// LegalKeywords returns the keyword list used for classification confidence
func (c *Catalog) LegalKeywords() []string { return c.legalKeywords }

// NegationWords returns the negation keyword list
func (c *Catalog) NegationWords() []string { return c.negationWords }

// UncertaintyWords returns the hedging keyword list
func (c *Catalog) UncertaintyWords() []string { return c.uncertaintyWords }

// UrgencyWords returns the time-pressure keyword list
func (c *Catalog) UrgencyWords() []string { return c.urgencyWords }

func compile(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

func compileTypeGroups() []TypeGroup {
	groups := make([]TypeGroup, len(typeGroups))
	for i, g := range typeGroups {
		groups[i] = TypeGroup{Type: g.clauseType, Patterns: compile(g.patterns)}
	}
	return groups
}

func compileRiskGroups() []RiskGroup {
	groups := make([]RiskGroup, len(riskGroups))
	for i, g := range riskGroups {
		groups[i] = RiskGroup{Name: g.name, Weight: g.weight, Patterns: compile(g.patterns)}
	}
	return groups
}

func compileFactorDetectors() []FactorDetector {
	detectors := make([]FactorDetector, len(factorDetectors))
	for i, d := range factorDetectors {
		detectors[i] = FactorDetector{Name: d.name, Pattern: regexp.MustCompile(`(?i)` + d.pattern)}
	}
	return detectors
}
