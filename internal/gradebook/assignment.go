package gradebook

import (
	"fmt"
	"strings"
)

// Kind identifies one concrete assignment variant.
type Kind string

// The closed set of assignment variants.
const (
	KindHomework Kind = "Homework"
	KindQuiz     Kind = "Quiz"
	KindProject  Kind = "Project"
	KindExam     Kind = "Exam"
)

// ParseKind maps a free-form type tag to a Kind. Unrecognised or empty tags
// fall back to Homework; lenient decoding is deliberate policy so imported
// and persisted data never fails on an unknown tag.
func ParseKind(tag string) Kind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "quiz":
		return KindQuiz
	case "project":
		return KindProject
	case "exam":
		return KindExam
	default:
		return KindHomework
	}
}

// Assignment is the capability contract shared by every graded item. The
// interface is sealed: only the variants declared in this package satisfy it.
type Assignment interface {
	Kind() Kind
	Name() string
	Points() float64
	MaxPoints() float64
	Week() int

	// Percentage computes the weighted percentage score for the variant.
	Percentage() float64

	// Update replaces the earned and maximum points atomically; on
	// validation failure neither field changes.
	Update(points, maxPoints float64) error

	record() AssignmentRecord
}

type base struct {
	kind      Kind
	name      string
	points    float64
	maxPoints float64
	week      int
}

func newBase(kind Kind, name string, points, maxPoints float64, week int) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, fmt.Errorf("%w: assignment name cannot be empty", ErrInvalidArgument)
	}
	if maxPoints <= 0 {
		return base{}, fmt.Errorf("%w: max points must be positive", ErrInvalidArgument)
	}
	if points < 0 {
		return base{}, fmt.Errorf("%w: points cannot be negative", ErrInvalidArgument)
	}
	if week < 1 {
		week = 1
	}

	return base{kind: kind, name: name, points: points, maxPoints: maxPoints, week: week}, nil
}

func (b *base) Kind() Kind         { return b.kind }
func (b *base) Name() string       { return b.name }
func (b *base) Points() float64    { return b.points }
func (b *base) MaxPoints() float64 { return b.maxPoints }
func (b *base) Week() int          { return b.week }

func (b *base) Update(points, maxPoints float64) error {
	if points < 0 {
		return fmt.Errorf("%w: points cannot be negative", ErrInvalidArgument)
	}
	if maxPoints <= 0 {
		return fmt.Errorf("%w: max points must be positive", ErrInvalidArgument)
	}

	b.points = points
	b.maxPoints = maxPoints
	return nil
}

func (b *base) record() AssignmentRecord {
	return AssignmentRecord{
		Type:      string(b.kind),
		Name:      b.name,
		Points:    b.points,
		MaxPoints: b.maxPoints,
		Week:      b.week,
	}
}

// Homework scores as a plain percentage.
type Homework struct{ base }

// NewHomework constructs a homework assignment.
func NewHomework(name string, points, maxPoints float64, week int) (*Homework, error) {
	b, err := newBase(KindHomework, name, points, maxPoints, week)
	if err != nil {
		return nil, err
	}
	return &Homework{base: b}, nil
}

func (h *Homework) Percentage() float64 { return h.points / h.maxPoints * 100 }

// Quiz scores at 1.2x weight, capped at 100%.
type Quiz struct{ base }

// NewQuiz constructs a quiz assignment.
func NewQuiz(name string, points, maxPoints float64, week int) (*Quiz, error) {
	b, err := newBase(KindQuiz, name, points, maxPoints, week)
	if err != nil {
		return nil, err
	}
	return &Quiz{base: b}, nil
}

func (q *Quiz) Percentage() float64 {
	pct := q.points / q.maxPoints * 1.2 * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Project scores at 0.9x weight.
type Project struct{ base }

// NewProject constructs a project assignment.
func NewProject(name string, points, maxPoints float64, week int) (*Project, error) {
	b, err := newBase(KindProject, name, points, maxPoints, week)
	if err != nil {
		return nil, err
	}
	return &Project{base: b}, nil
}

func (p *Project) Percentage() float64 { return p.points / p.maxPoints * 0.9 * 100 }

// Exam scores as a plain percentage.
type Exam struct{ base }

// NewExam constructs an exam assignment.
func NewExam(name string, points, maxPoints float64, week int) (*Exam, error) {
	b, err := newBase(KindExam, name, points, maxPoints, week)
	if err != nil {
		return nil, err
	}
	return &Exam{base: b}, nil
}

func (e *Exam) Percentage() float64 { return e.points / e.maxPoints * 100 }

// NewAssignment is the factory for the variant family, keyed on a type tag.
// Unknown tags build a Homework (see ParseKind).
func NewAssignment(tag, name string, points, maxPoints float64, week int) (Assignment, error) {
	switch ParseKind(tag) {
	case KindQuiz:
		return NewQuiz(name, points, maxPoints, week)
	case KindProject:
		return NewProject(name, points, maxPoints, week)
	case KindExam:
		return NewExam(name, points, maxPoints, week)
	default:
		return NewHomework(name, points, maxPoints, week)
	}
}
