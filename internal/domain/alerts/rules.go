package alerts

import "github.com/hemovigil/hemovigil/internal/domain/hemogram"

// Rule is one clinical threshold predicate over a validated hemogram record.
// Severity runs 1-3, higher is more urgent. Predicates must treat an absent
// measurement as a non-match.
type Rule struct {
	Condition string
	Severity  int
	Matches   func(r *hemogram.Record) bool
	Message   string
}

// DefaultRules returns the clinical rule set in evaluation order. Order and
// thresholds encode clinical policy; a record may match several rules and
// every match is reported independently.
func DefaultRules() []Rule {
	return []Rule{
		{
			Condition: "platelets_lt_50k",
			Severity:  3,
			Matches: func(r *hemogram.Record) bool {
				return r.Platelets != nil && *r.Platelets < 50_000
			},
			Message: "Low platelets (< 50,000) - severe bleeding risk",
		},
		{
			Condition: "platelets_lt_100k",
			Severity:  2,
			Matches: func(r *hemogram.Record) bool {
				return r.Platelets != nil && *r.Platelets >= 50_000 && *r.Platelets < 100_000
			},
			Message: "Moderately low platelets (< 100,000)",
		},
		{
			Condition: "hb_lt_8",
			Severity:  3,
			Matches: func(r *hemogram.Record) bool {
				return r.Hemoglobin != nil && *r.Hemoglobin < 8
			},
			Message: "Low hemoglobin (< 8 g/dL) - moderate anemia",
		},
		{
			Condition: "hb_lt_10",
			Severity:  2,
			Matches: func(r *hemogram.Record) bool {
				return r.Hemoglobin != nil && *r.Hemoglobin >= 8 && *r.Hemoglobin < 10
			},
			Message: "Moderately low hemoglobin (< 10 g/dL)",
		},
		{
			Condition: "wbc_lt_2",
			Severity:  3,
			Matches: func(r *hemogram.Record) bool {
				return r.Leukocytes != nil && *r.Leukocytes < 2.0
			},
			Message: "Low leukocytes (< 2,000) - infection risk",
		},
	}
}
