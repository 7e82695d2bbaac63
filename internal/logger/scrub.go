// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/appkit/internal/config"
)

// piiRules are the built-in general-purpose PII detectors, applied before
// the custom rules when UseDefaultPII is enabled. Order matters: at the
// same position the first alternative wins, so broader matches come first.
var piiRules = []config.Rule{
	{Name: "url", Regex: `https?://[^\s"'<>]+`, Placeholder: "{{URL}}"},
	{Name: "email", Regex: `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`, Placeholder: "{{EMAIL}}"},
	{Name: "ipv4", Regex: `\b(?:\d{1,3}\.){3}\d{1,3}\b`, Placeholder: "{{IPV4}}"},
	{Name: "credit_card", Regex: `\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{4}\b`, Placeholder: "{{CREDIT_CARD}}"},
	{Name: "phone", Regex: `\+?\b\d{1,2}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`, Placeholder: "{{PHONE}}"},
}

// Scrubber replaces sensitive substrings in log output with placeholders.
//
// All rules of a pass are compiled into one alternation, each rule tagged
// with a named capture group mapping to its own placeholder, so adjacent
// matches of different rules are each replaced correctly in a single linear
// pass. Scrubbing is idempotent as long as no placeholder matches a rule.
//
// A Scrubber is immutable after construction and safe for concurrent use.
type Scrubber struct {
	enabled bool
	pii     *ruleSet
	custom  *ruleSet
}

// ruleSet is one compiled alternation plus the placeholder of each
// subexpression group named p<i>.
type ruleSet struct {
	re           *regexp.Regexp
	placeholders map[int]string // subexpression index -> placeholder
}

// NewScrubber compiles the redaction configuration. Patterns are assumed to
// be individually pre-validated by the config package; a combined-compile
// failure is still reported with the offending rule set named.
func NewScrubber(cfg config.Redaction) (*Scrubber, error) {
	s := &Scrubber{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return s, nil
	}

	var err error
	if cfg.UseDefaultPII {
		s.pii, err = compileRules(piiRules)
		if err != nil {
			return nil, fmt.Errorf("compiling built-in PII rules: %w", err)
		}
	}

	if len(cfg.Patterns) > 0 {
		s.custom, err = compileRules(cfg.Patterns)
		if err != nil {
			return nil, fmt.Errorf("compiling redaction rules: %w", err)
		}
	}

	return s, nil
}

func compileRules(rules []config.Rule) (*ruleSet, error) {
	parts := make([]string, 0, len(rules))
	byName := make(map[string]string, len(rules))
	for i, rule := range rules {
		group := fmt.Sprintf("p%d", i)
		parts = append(parts, fmt.Sprintf("(?P<%s>%s)", group, rule.Regex))
		byName[group] = rule.Placeholder
	}

	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return nil, err
	}

	// user patterns may contain their own capture groups, so placeholders
	// are resolved by subexpression index of the named groups only
	placeholders := make(map[int]string)
	for idx, name := range re.SubexpNames() {
		if ph, ok := byName[name]; ok {
			placeholders[idx] = ph
		}
	}

	return &ruleSet{re: re, placeholders: placeholders}, nil
}

// Scrub returns text with every match of the configured rules replaced by
// the matching rule's placeholder. It never fails; a disabled scrubber or
// empty input returns the text unchanged.
func (s *Scrubber) Scrub(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	if s.pii != nil {
		text = s.pii.apply(text)
	}
	if s.custom != nil {
		text = s.custom.apply(text)
	}

	return text
}

// Enabled reports whether scrubbing is active.
func (s *Scrubber) Enabled() bool {
	return s.enabled
}

func (r *ruleSet) apply(text string) string {
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(r.placeholderFor(m))
		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String()
}

// placeholderFor returns the placeholder of the named group that
// participated in the match.
func (r *ruleSet) placeholderFor(m []int) string {
	for idx, ph := range r.placeholders {
		if 2*idx+1 < len(m) && m[2*idx] >= 0 {
			return ph
		}
	}

	return "[REDACTED]"
}
