package dto

import "github.com/rosterbook/gradebook-api/internal/gradebook"

// GradeCreateRequest describes the payload for recording a grade.
type GradeCreateRequest struct {
	StudentID      string  `json:"student_id" validate:"required"`
	ClassName      string  `json:"class_name" validate:"required"`
	AssignmentName string  `json:"assignment_name" validate:"required"`
	AssignmentType string  `json:"assignment_type"`
	Points         float64 `json:"points"`
	MaxPoints      float64 `json:"max_points" validate:"required"`
	Week           int     `json:"week"`
}

// GradeUpdateRequest rescores an existing grade.
type GradeUpdateRequest struct {
	StudentID      string  `json:"student_id" validate:"required"`
	ClassName      string  `json:"class_name" validate:"required"`
	AssignmentName string  `json:"assignment_name" validate:"required"`
	Points         float64 `json:"points"`
	MaxPoints      float64 `json:"max_points" validate:"required"`
}

// GradeDeleteRequest removes an existing grade.
type GradeDeleteRequest struct {
	StudentID      string `json:"student_id" validate:"required"`
	ClassName      string `json:"class_name" validate:"required"`
	AssignmentName string `json:"assignment_name" validate:"required"`
}

// GradeResponse is one flat grade row, as listed and filtered by the grades
// endpoint.
type GradeResponse struct {
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"name"`
	ClassName      string  `json:"class_name"`
	AssignmentName string  `json:"assignment_name"`
	AssignmentType string  `json:"assignment_type"`
	Points         float64 `json:"points"`
	MaxPoints      float64 `json:"max_points"`
	Score          float64 `json:"score"`
	Week           int     `json:"week"`
}

// NewGradeResponse flattens one assignment of one student into a grade row.
func NewGradeResponse(s *gradebook.Student, course string, a gradebook.Assignment) GradeResponse {
	return GradeResponse{
		StudentID:      s.ID(),
		StudentName:    s.Name(),
		ClassName:      course,
		AssignmentName: a.Name(),
		AssignmentType: string(a.Kind()),
		Points:         a.Points(),
		MaxPoints:      a.MaxPoints(),
		Score:          a.Percentage(),
		Week:           a.Week(),
	}
}

// AverageResponse reports an average that may be absent.
type AverageResponse struct {
	Course  string   `json:"course,omitempty"`
	Average *float64 `json:"average"`
}
