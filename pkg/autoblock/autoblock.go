// Package autoblock gates tracking resources behind consent. A Blocker
// holds a data-driven rule list (domain substring to category) and decides
// per URL whether a script, iframe or pixel may load given the current
// consent state.
package autoblock

import (
	"strings"
)

// Kind labels the resource type on a decision. It is recorded for the
// host's instrumentation and never affects matching.
type Kind string

const (
	KindScript Kind = "script"
	KindIframe Kind = "iframe"
	KindPixel  Kind = "pixel"
)

// Rule suppresses URLs containing Pattern until Category is consented.
// Rules are data, not code; they are managed by id at runtime.
type Rule struct {
	ID       string `json:"id"`
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

// Decision is the outcome of one Evaluate call. RuleID and Category are set
// when a rule suppressed the load.
type Decision struct {
	Allowed  bool
	URL      string
	Kind     Kind
	RuleID   string
	Category string
}

// Blocker evaluates URLs against its rule list. Like the consent Manager it
// is driven from a single event loop and not safe for concurrent use.
type Blocker struct {
	rules []Rule
}

// NewBlocker builds a Blocker from the given rules.
func NewBlocker(rules ...Rule) *Blocker {
	return &Blocker{rules: append([]Rule{}, rules...)}
}

// Default returns a Blocker preloaded with DefaultRules.
func Default() *Blocker {
	return NewBlocker(DefaultRules()...)
}

// Rules returns a copy of the current rule list.
func (b *Blocker) Rules() []Rule {
	return append([]Rule{}, b.rules...)
}

// Add appends a rule. An existing rule with the same id is replaced.
func (b *Blocker) Add(rule Rule) {
	for i := range b.rules {
		if b.rules[i].ID == rule.ID {
			b.rules[i] = rule
			return
		}
	}
	b.rules = append(b.rules, rule)
}

// Remove drops the rule by id, reporting whether it existed.
func (b *Blocker) Remove(id string) bool {
	for i := range b.rules {
		if b.rules[i].ID == id {
			b.rules = append(b.rules[:i], b.rules[i+1:]...)
			return true
		}
	}
	return false
}

// Enable turns a rule on by id, reporting whether it exists.
func (b *Blocker) Enable(id string) bool {
	return b.setEnabled(id, true)
}

// Disable turns a rule off by id, reporting whether it exists.
func (b *Blocker) Disable(id string) bool {
	return b.setEnabled(id, false)
}

func (b *Blocker) setEnabled(id string, enabled bool) bool {
	for i := range b.rules {
		if b.rules[i].ID == id {
			b.rules[i].Enabled = enabled
			return true
		}
	}
	return false
}

// Evaluate decides whether a resource may load. The load is suppressed when
// any enabled rule's pattern is contained in the URL and that rule's
// category is not consented. Rules are checked independently per category.
// Evaluation is stateless: once a category is consented, later attempts for
// its resources pass, while already suppressed loads are not retried.
func (b *Blocker) Evaluate(kind Kind, rawURL string, consented map[string]bool) Decision {
	for _, rule := range b.rules {
		if !rule.Enabled {
			continue
		}
		if !strings.Contains(rawURL, rule.Pattern) {
			continue
		}
		if consented[rule.Category] {
			continue
		}
		return Decision{
			Allowed:  false,
			URL:      rawURL,
			Kind:     kind,
			RuleID:   rule.ID,
			Category: rule.Category,
		}
	}
	return Decision{Allowed: true, URL: rawURL, Kind: kind}
}
