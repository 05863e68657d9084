package gradebook

// Record types describe the persisted snapshot layout. The JSON shape is a
// contract: a save followed by a load must reproduce every field below.

// AssignmentRecord is the serialized form of a single graded item.
type AssignmentRecord struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"max_points"`
	Week      int     `json:"week"`
}

// StudentRecord is the serialized form of a student and all their grades.
type StudentRecord struct {
	StudentID string                                 `json:"student_id"`
	Name      string                                 `json:"name"`
	Major     string                                 `json:"major"`
	Classes   []string                               `json:"classes"`
	Grades    map[string]map[string]AssignmentRecord `json:"grades"`
}

// TeacherRecord is the serialized form of a teacher.
type TeacherRecord struct {
	TeacherID     string   `json:"teacher_id"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	CoursesTaught []string `json:"courses_taught"`
}

// GradebookRecord is the serialized form of a whole gradebook.
type GradebookRecord struct {
	Students map[string]StudentRecord `json:"students"`
	Teachers map[string]TeacherRecord `json:"teachers"`
}

// AssignmentFromRecord rebuilds a concrete variant from its record form.
// The type tag goes through ParseKind, so unknown tags decode as Homework.
func AssignmentFromRecord(rec AssignmentRecord) (Assignment, error) {
	return NewAssignment(rec.Type, rec.Name, rec.Points, rec.MaxPoints, rec.Week)
}
