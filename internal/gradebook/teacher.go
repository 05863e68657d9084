package gradebook

import (
	"fmt"
	"strings"
)

// Teacher carries an ordered, duplicate-free list of taught course codes.
type Teacher struct {
	id         string
	name       string
	department string
	courses    []string
}

// NewTeacher constructs a teacher.
func NewTeacher(id, name, department string) (*Teacher, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: teacher id cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: teacher name cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(department) == "" {
		return nil, fmt.Errorf("%w: department cannot be empty", ErrInvalidArgument)
	}

	return &Teacher{id: id, name: name, department: department}, nil
}

// ID returns the teacher identifier.
func (t *Teacher) ID() string { return t.id }

// Name returns the teacher display name.
func (t *Teacher) Name() string { return t.name }

// Department returns the teaching department.
func (t *Teacher) Department() string { return t.department }

// Courses returns the taught course codes in the order they were added.
func (t *Teacher) Courses() []string {
	out := make([]string, len(t.courses))
	copy(out, t.courses)
	return out
}

// AddCourse appends a course to the teaching load. Adding a course that is
// already present is a no-op.
func (t *Teacher) AddCourse(code string) {
	for _, c := range t.courses {
		if c == code {
			return
		}
	}
	t.courses = append(t.courses, code)
}

// RemoveCourse drops a course from the teaching load. Removing an absent
// course is a silent no-op.
func (t *Teacher) RemoveCourse(code string) {
	for i, c := range t.courses {
		if c == code {
			t.courses = append(t.courses[:i], t.courses[i+1:]...)
			return
		}
	}
}

// Record converts the teacher to its serialized form.
func (t *Teacher) Record() TeacherRecord {
	return TeacherRecord{
		TeacherID:     t.id,
		Name:          t.name,
		Department:    t.department,
		CoursesTaught: t.Courses(),
	}
}

// TeacherFromRecord rebuilds a teacher from its serialized form.
func TeacherFromRecord(rec TeacherRecord) (*Teacher, error) {
	t, err := NewTeacher(rec.TeacherID, rec.Name, rec.Department)
	if err != nil {
		return nil, err
	}
	for _, code := range rec.CoursesTaught {
		t.AddCourse(code)
	}
	return t, nil
}
