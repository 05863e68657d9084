package dto

import "github.com/rosterbook/gradebook-api/internal/gradebook"

// TeacherCreateRequest describes the payload for registering a teacher.
type TeacherCreateRequest struct {
	TeacherID  string   `json:"teacher_id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Department string   `json:"department" validate:"required"`
	Courses    []string `json:"courses" validate:"omitempty,dive,required"`
}

// CourseRequest names a single course code.
type CourseRequest struct {
	Course string `json:"course" validate:"required"`
}

// TeacherResponse is the serialized representation returned to API clients.
type TeacherResponse struct {
	TeacherID  string   `json:"teacher_id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Courses    []string `json:"courses_taught"`
}

// NewTeacherResponse converts a domain teacher into a DTO.
func NewTeacherResponse(t *gradebook.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherID:  t.ID(),
		Name:       t.Name(),
		Department: t.Department(),
		Courses:    t.Courses(),
	}
}

// NewTeacherResponseSlice converts a slice of domain teachers into DTOs.
func NewTeacherResponseSlice(teachers []*gradebook.Teacher) []TeacherResponse {
	responses := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, NewTeacherResponse(t))
	}
	return responses
}

// TeacherDashboardResponse aggregates class standings for every course a
// teacher runs.
type TeacherDashboardResponse struct {
	TeacherID  string          `json:"teacher_id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Courses    []CourseSummary `json:"courses"`
}

// CourseSummary carries the class-wide average and the per-student roster
// for one course.
type CourseSummary struct {
	Course       string        `json:"course"`
	ClassAverage *float64      `json:"class_average"`
	Enrolled     int           `json:"enrolled"`
	Roster       []RosterEntry `json:"roster"`
}

// RosterEntry is one student's standing within a course.
type RosterEntry struct {
	StudentID    string   `json:"student_id"`
	Name         string   `json:"name"`
	Major        string   `json:"major"`
	ClassAverage *float64 `json:"class_average"`
}

// NewRosterEntry builds a roster row for one student in one course.
func NewRosterEntry(s *gradebook.Student, course string) RosterEntry {
	return RosterEntry{
		StudentID:    s.ID(),
		Name:         s.Name(),
		Major:        s.Major(),
		ClassAverage: AveragePtr(s.ClassAverage(course)),
	}
}
