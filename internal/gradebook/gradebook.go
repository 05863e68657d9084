package gradebook

import (
	"fmt"
	"sort"
)

// Gradebook is the aggregation root: it owns every Student and Teacher by id
// and delegates grade mutations to the owning Student. It is not safe for
// concurrent mutation; callers serialize access externally.
type Gradebook struct {
	students     map[string]*Student
	teachers     map[string]*Teacher
	studentOrder []string
	teacherOrder []string
}

// New creates an empty gradebook.
func New() *Gradebook {
	return &Gradebook{
		students: make(map[string]*Student),
		teachers: make(map[string]*Teacher),
	}
}

// AddStudent inserts a student by id. Re-adding an existing id replaces the
// prior entry without changing its roster position.
func (g *Gradebook) AddStudent(s *Student) {
	if _, ok := g.students[s.ID()]; !ok {
		g.studentOrder = append(g.studentOrder, s.ID())
	}
	g.students[s.ID()] = s
}

// Student looks up a student by id.
func (g *Gradebook) Student(id string) (*Student, bool) {
	s, ok := g.students[id]
	return s, ok
}

// RemoveStudent deletes a student and all of their grades. Removing an
// unknown id is a no-op.
func (g *Gradebook) RemoveStudent(id string) {
	if _, ok := g.students[id]; !ok {
		return
	}
	delete(g.students, id)
	for i, sid := range g.studentOrder {
		if sid == id {
			g.studentOrder = append(g.studentOrder[:i], g.studentOrder[i+1:]...)
			break
		}
	}
}

// Students returns every student in insertion order.
func (g *Gradebook) Students() []*Student {
	out := make([]*Student, 0, len(g.studentOrder))
	for _, id := range g.studentOrder {
		out = append(out, g.students[id])
	}
	return out
}

// AddTeacher inserts a teacher by id, replacing any prior entry.
func (g *Gradebook) AddTeacher(t *Teacher) {
	if _, ok := g.teachers[t.ID()]; !ok {
		g.teacherOrder = append(g.teacherOrder, t.ID())
	}
	g.teachers[t.ID()] = t
}

// Teacher looks up a teacher by id.
func (g *Gradebook) Teacher(id string) (*Teacher, bool) {
	t, ok := g.teachers[id]
	return t, ok
}

// Teachers returns every teacher in insertion order.
func (g *Gradebook) Teachers() []*Teacher {
	out := make([]*Teacher, 0, len(g.teacherOrder))
	for _, id := range g.teacherOrder {
		out = append(out, g.teachers[id])
	}
	return out
}

// AddGrade records an assignment for a student. The student must exist and
// be enrolled in the course; on failure no state changes.
func (g *Gradebook) AddGrade(studentID, course string, a Assignment) error {
	s, ok := g.students[studentID]
	if !ok {
		return fmt.Errorf("%w: student %q", ErrNotFound, studentID)
	}
	return s.AddAssignment(course, a)
}

// UpdateGrade rescores an existing assignment.
func (g *Gradebook) UpdateGrade(studentID, course, name string, points, maxPoints float64) error {
	s, ok := g.students[studentID]
	if !ok {
		return fmt.Errorf("%w: student %q", ErrNotFound, studentID)
	}
	return s.UpdateAssignment(course, name, points, maxPoints)
}

// DeleteGrade removes an existing assignment.
func (g *Gradebook) DeleteGrade(studentID, course, name string) error {
	s, ok := g.students[studentID]
	if !ok {
		return fmt.Errorf("%w: student %q", ErrNotFound, studentID)
	}
	return s.DeleteAssignment(course, name)
}

// ClassRoster returns the students enrolled in a course, in student
// insertion order.
func (g *Gradebook) ClassRoster(course string) []*Student {
	var roster []*Student
	for _, id := range g.studentOrder {
		if s := g.students[id]; s.Enrolled(course) {
			roster = append(roster, s)
		}
	}
	return roster
}

// ClassAverage is the mean of each enrolled student's own class average,
// skipping students with no grades in the course. Each student reduces
// their own assignments first, so the statistic weights by student rather
// than by assignment count.
func (g *Gradebook) ClassAverage(course string) (float64, bool) {
	var total float64
	var count int
	for _, s := range g.ClassRoster(course) {
		if avg, ok := s.ClassAverage(course); ok {
			total += avg
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return round2(total / float64(count)), true
}

// Record converts the gradebook to its serialized form, walking the graph
// top-down.
func (g *Gradebook) Record() GradebookRecord {
	rec := GradebookRecord{
		Students: make(map[string]StudentRecord, len(g.students)),
		Teachers: make(map[string]TeacherRecord, len(g.teachers)),
	}
	for id, s := range g.students {
		rec.Students[id] = s.Record()
	}
	for id, t := range g.teachers {
		rec.Teachers[id] = t.Record()
	}
	return rec
}

// FromRecord rebuilds a gradebook bottom-up. The snapshot keys entries by
// id, so insertion order is not persisted; entries are re-added in sorted
// id order for determinism.
func FromRecord(rec GradebookRecord) (*Gradebook, error) {
	g := New()

	for _, id := range sortedKeys(rec.Students) {
		s, err := StudentFromRecord(rec.Students[id])
		if err != nil {
			return nil, err
		}
		g.AddStudent(s)
	}

	for _, id := range sortedKeys(rec.Teachers) {
		t, err := TeacherFromRecord(rec.Teachers[id])
		if err != nil {
			return nil, err
		}
		g.AddTeacher(t)
	}

	return g, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
