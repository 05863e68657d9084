package gradebook

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultMajor is assigned when a student is created without one.
const DefaultMajor = "Undeclared"

// Student owns its enrollment set and every assignment graded against it.
// Grades are keyed course code -> assignment name; a course key only exists
// while the student is enrolled in it.
type Student struct {
	id      string
	name    string
	major   string
	classes []string
	grades  map[string]map[string]Assignment
}

// NewStudent constructs a student. A blank major defaults to "Undeclared".
func NewStudent(id, name, major string) (*Student, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: student id cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: student name cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(major) == "" {
		major = DefaultMajor
	}

	return &Student{
		id:     id,
		name:   name,
		major:  major,
		grades: make(map[string]map[string]Assignment),
	}, nil
}

// ID returns the student identifier.
func (s *Student) ID() string { return s.id }

// Name returns the student display name.
func (s *Student) Name() string { return s.name }

// Major returns the declared major.
func (s *Student) Major() string { return s.major }

// SetMajor replaces the declared major.
func (s *Student) SetMajor(major string) { s.major = major }

// Classes returns the enrolled course codes in enrollment order.
func (s *Student) Classes() []string {
	out := make([]string, len(s.classes))
	copy(out, s.classes)
	return out
}

// Enrolled reports whether the student is enrolled in the course.
func (s *Student) Enrolled(course string) bool {
	_, ok := s.grades[course]
	return ok
}

// Enroll adds the course to the enrollment set. Enrolling twice is a no-op.
func (s *Student) Enroll(course string) {
	if s.Enrolled(course) {
		return
	}
	s.classes = append(s.classes, course)
	s.grades[course] = make(map[string]Assignment)
}

// Drop removes the course and discards all of its grades immediately.
func (s *Student) Drop(course string) {
	if !s.Enrolled(course) {
		return
	}
	for i, c := range s.classes {
		if c == course {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			break
		}
	}
	delete(s.grades, course)
}

// AddAssignment records a grade for an enrolled course. Re-adding an
// assignment with the same name replaces the prior grade.
func (s *Student) AddAssignment(course string, a Assignment) error {
	if !s.Enrolled(course) {
		return fmt.Errorf("%w: %s is not enrolled in %s", ErrNotEnrolled, s.name, course)
	}
	s.grades[course][a.Name()] = a
	return nil
}

// UpdateAssignment replaces the points of an existing grade.
func (s *Student) UpdateAssignment(course, name string, points, maxPoints float64) error {
	a, err := s.assignment(course, name)
	if err != nil {
		return err
	}
	return a.Update(points, maxPoints)
}

// DeleteAssignment removes an existing grade.
func (s *Student) DeleteAssignment(course, name string) error {
	if _, err := s.assignment(course, name); err != nil {
		return err
	}
	delete(s.grades[course], name)
	return nil
}

func (s *Student) assignment(course, name string) (Assignment, error) {
	byName, ok := s.grades[course]
	if !ok {
		return nil, fmt.Errorf("%w: no grades for %s", ErrNotFound, course)
	}
	a, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: assignment %q", ErrNotFound, name)
	}
	return a, nil
}

// Assignments returns the grades for a course sorted by assignment name.
// Unknown courses return nil.
func (s *Student) Assignments(course string) []Assignment {
	byName, ok := s.grades[course]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Assignment, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// ClassAverage returns the mean percentage over all assignments in the
// course, rounded to two decimals. The second return is false when there is
// nothing to average; callers must not read that as a zero average.
func (s *Student) ClassAverage(course string) (float64, bool) {
	byName, ok := s.grades[course]
	if !ok || len(byName) == 0 {
		return 0, false
	}
	var total float64
	for _, a := range byName {
		total += a.Percentage()
	}
	return round2(total / float64(len(byName))), true
}

// OverallAverage returns the mean percentage over every assignment in every
// enrolled course, with the same no-value semantics as ClassAverage.
func (s *Student) OverallAverage() (float64, bool) {
	var total float64
	var count int
	for _, byName := range s.grades {
		for _, a := range byName {
			total += a.Percentage()
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return round2(total / float64(count)), true
}

// Record converts the student to its serialized form.
func (s *Student) Record() StudentRecord {
	grades := make(map[string]map[string]AssignmentRecord, len(s.grades))
	for course, byName := range s.grades {
		courseGrades := make(map[string]AssignmentRecord, len(byName))
		for name, a := range byName {
			courseGrades[name] = a.record()
		}
		grades[course] = courseGrades
	}

	return StudentRecord{
		StudentID: s.id,
		Name:      s.name,
		Major:     s.major,
		Classes:   s.Classes(),
		Grades:    grades,
	}
}

// StudentFromRecord rebuilds a student bottom-up. Enrollment is re-run
// before grades are inserted so the enrollment invariant holds throughout.
func StudentFromRecord(rec StudentRecord) (*Student, error) {
	s, err := NewStudent(rec.StudentID, rec.Name, rec.Major)
	if err != nil {
		return nil, err
	}

	for _, course := range rec.Classes {
		s.Enroll(course)
	}

	courses := make([]string, 0, len(rec.Grades))
	for course := range rec.Grades {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	for _, course := range courses {
		s.Enroll(course)
		for _, aRec := range rec.Grades[course] {
			a, err := AssignmentFromRecord(aRec)
			if err != nil {
				return nil, err
			}
			if err := s.AddAssignment(course, a); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
