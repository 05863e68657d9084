// Package filter provides a composable predicate pipeline over flat grade
// records. Records are plain field->value maps, deliberately decoupled from
// the strongly-typed gradebook model: callers flatten model data into
// records before filtering.
package filter

import "strings"

// Record is one flat grade row. Expected fields include "name",
// "assignment_type", "score", "is_late" and "week"; missing fields default
// permissively (score 0, not late).
type Record map[string]interface{}

// Filter narrows a record list. Implementations must not mutate the input.
type Filter interface {
	Apply(records []Record) []Record
}

// ByAssignmentType keeps records whose assignment type matches,
// case-insensitively.
type ByAssignmentType struct {
	Type string
}

// Apply implements Filter.
func (f ByAssignmentType) Apply(records []Record) []Record {
	want := strings.ToLower(f.Type)
	return keep(records, func(r Record) bool {
		return strings.ToLower(stringField(r, "assignment_type")) == want
	})
}

// LateOnly keeps records flagged as late submissions.
type LateOnly struct{}

// Apply implements Filter.
func (LateOnly) Apply(records []Record) []Record {
	return keep(records, func(r Record) bool {
		return boolField(r, "is_late")
	})
}

// ScoreRange keeps records whose score lies within the inclusive bounds.
type ScoreRange struct {
	Min float64
	Max float64
}

// NewScoreRange builds a score range filter with the default 0-100 bounds.
func NewScoreRange() ScoreRange {
	return ScoreRange{Min: 0, Max: 100}
}

// Apply implements Filter.
func (f ScoreRange) Apply(records []Record) []Record {
	return keep(records, func(r Record) bool {
		score := floatField(r, "score")
		return score >= f.Min && score <= f.Max
	})
}

// ByStudentName keeps records for one student, case-insensitively.
type ByStudentName struct {
	Name string
}

// Apply implements Filter.
func (f ByStudentName) Apply(records []Record) []Record {
	want := strings.ToLower(f.Name)
	return keep(records, func(r Record) bool {
		return strings.ToLower(stringField(r, "name")) == want
	})
}

// ByWeek keeps records for an exact week number.
type ByWeek struct {
	Week int
}

// Apply implements Filter.
func (f ByWeek) Apply(records []Record) []Record {
	return keep(records, func(r Record) bool {
		week, ok := intField(r, "week")
		return ok && week == f.Week
	})
}

// DefaultPassingScore is the minimum score counted as passing when none is
// configured.
const DefaultPassingScore = 60

// Passing keeps records at or above the passing threshold.
type Passing struct {
	MinScore float64
}

// NewPassing builds a passing filter with the default threshold.
func NewPassing() Passing {
	return Passing{MinScore: DefaultPassingScore}
}

// Apply implements Filter.
func (f Passing) Apply(records []Record) []Record {
	return keep(records, func(r Record) bool {
		return floatField(r, "score") >= f.MinScore
	})
}

// Chain applies filters left-to-right, each stage feeding the next. The
// result is the logical AND of all predicates; an empty chain is identity.
type Chain struct {
	filters []Filter
}

// Add appends a filter to the pipeline.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Clear removes every filter.
func (c *Chain) Clear() {
	c.filters = nil
}

// Apply runs the pipeline over the records.
func (c *Chain) Apply(records []Record) []Record {
	result := records
	for _, f := range c.filters {
		result = f.Apply(result)
	}
	return result
}

func keep(records []Record, pred func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func stringField(r Record, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

func boolField(r Record, key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

func floatField(r Record, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func intField(r Record, key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
