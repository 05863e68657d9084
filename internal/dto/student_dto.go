package dto

import "github.com/rosterbook/gradebook-api/internal/gradebook"

// StudentCreateRequest describes the payload for registering a student.
type StudentCreateRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Major     string   `json:"major"`
	Classes   []string `json:"classes" validate:"omitempty,dive,required"`
}

// EnrollmentRequest names a single course to enroll in or drop.
type EnrollmentRequest struct {
	Course string `json:"course" validate:"required"`
}

// StudentResponse is the serialized representation returned to API clients.
type StudentResponse struct {
	StudentID      string   `json:"student_id"`
	Name           string   `json:"name"`
	Major          string   `json:"major"`
	Classes        []string `json:"classes"`
	OverallAverage *float64 `json:"overall_average"`
}

// NewStudentResponse converts a domain student into a DTO.
func NewStudentResponse(s *gradebook.Student) StudentResponse {
	return StudentResponse{
		StudentID:      s.ID(),
		Name:           s.Name(),
		Major:          s.Major(),
		Classes:        s.Classes(),
		OverallAverage: AveragePtr(s.OverallAverage()),
	}
}

// NewStudentResponseSlice converts a slice of domain students into DTOs.
func NewStudentResponseSlice(students []*gradebook.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, NewStudentResponse(s))
	}
	return responses
}

// StudentDashboardResponse aggregates a student's standing across classes.
type StudentDashboardResponse struct {
	StudentID      string       `json:"student_id"`
	Name           string       `json:"name"`
	Major          string       `json:"major"`
	OverallAverage *float64     `json:"overall_average"`
	Classes        []ClassGrade `json:"classes"`
}

// ClassGrade lists one class with its average and graded assignments.
type ClassGrade struct {
	ClassName   string               `json:"class_name"`
	Average     *float64             `json:"average"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// AssignmentResponse is the serialized form of a single graded item.
type AssignmentResponse struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Points     float64 `json:"points"`
	MaxPoints  float64 `json:"max_points"`
	Percentage float64 `json:"percentage"`
	Week       int     `json:"week"`
}

// NewAssignmentResponse converts a domain assignment into a DTO.
func NewAssignmentResponse(a gradebook.Assignment) AssignmentResponse {
	return AssignmentResponse{
		Name:       a.Name(),
		Type:       string(a.Kind()),
		Points:     a.Points(),
		MaxPoints:  a.MaxPoints(),
		Percentage: a.Percentage(),
		Week:       a.Week(),
	}
}

// NewStudentDashboardResponse assembles the dashboard for one student.
func NewStudentDashboardResponse(s *gradebook.Student) StudentDashboardResponse {
	resp := StudentDashboardResponse{
		StudentID:      s.ID(),
		Name:           s.Name(),
		Major:          s.Major(),
		OverallAverage: AveragePtr(s.OverallAverage()),
		Classes:        make([]ClassGrade, 0, len(s.Classes())),
	}

	for _, course := range s.Classes() {
		cg := ClassGrade{
			ClassName: course,
			Average:   AveragePtr(s.ClassAverage(course)),
		}
		for _, a := range s.Assignments(course) {
			cg.Assignments = append(cg.Assignments, NewAssignmentResponse(a))
		}
		resp.Classes = append(resp.Classes, cg)
	}

	return resp
}

// AveragePtr converts the domain's (value, ok) average into a nullable
// JSON field: null signals "no value", which is distinct from 0.
func AveragePtr(avg float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &avg
}
