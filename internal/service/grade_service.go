package service

import (
	"fmt"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/filter"
	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// GradeService exposes grade mutation, listing and class aggregation.
type GradeService interface {
	AddGrade(req dto.GradeCreateRequest) (dto.GradeResponse, error)
	UpdateGrade(req dto.GradeUpdateRequest) (dto.GradeResponse, error)
	DeleteGrade(req dto.GradeDeleteRequest) error
	ListGrades(query GradeQuery) []filter.Record
	ClassRoster(course string) []dto.RosterEntry
	ClassAverage(course string) dto.AverageResponse
}

// GradeQuery drives the filter pipeline applied by ListGrades. Zero values
// mean "no filter" for their stage.
type GradeQuery struct {
	Type         string
	Student      string
	LateOnly     bool
	MinScore     *float64
	MaxScore     *float64
	Week         *int
	PassingOnly  bool
	PassingScore *float64
}

// AddGrade validates and records a grade. The student must exist and be
// enrolled; on failure nothing is recorded.
func (s *Service) AddGrade(req dto.GradeCreateRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.GradeResponse{}, err
	}

	assignment, err := gradebook.NewAssignment(
		req.AssignmentType, req.AssignmentName, req.Points, req.MaxPoints, req.Week)
	if err != nil {
		return dto.GradeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.AddGrade(req.StudentID, req.ClassName, assignment); err != nil {
		return dto.GradeResponse{}, err
	}

	student, _ := s.book.Student(req.StudentID)
	s.logger.Info().
		Str("student_id", req.StudentID).
		Str("course", req.ClassName).
		Str("assignment", req.AssignmentName).
		Msg("grade added")

	return dto.NewGradeResponse(student, req.ClassName, assignment), nil
}

// UpdateGrade rescores an existing grade atomically.
func (s *Service) UpdateGrade(req dto.GradeUpdateRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.GradeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.UpdateGrade(req.StudentID, req.ClassName, req.AssignmentName, req.Points, req.MaxPoints); err != nil {
		return dto.GradeResponse{}, err
	}

	student, _ := s.book.Student(req.StudentID)
	for _, a := range student.Assignments(req.ClassName) {
		if a.Name() == req.AssignmentName {
			s.logger.Info().
				Str("student_id", req.StudentID).
				Str("course", req.ClassName).
				Str("assignment", req.AssignmentName).
				Msg("grade updated")
			return dto.NewGradeResponse(student, req.ClassName, a), nil
		}
	}

	return dto.GradeResponse{}, fmt.Errorf("%w: assignment %q", gradebook.ErrNotFound, req.AssignmentName)
}

// DeleteGrade removes an existing grade.
func (s *Service) DeleteGrade(req dto.GradeDeleteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.DeleteGrade(req.StudentID, req.ClassName, req.AssignmentName); err != nil {
		return err
	}

	s.logger.Info().
		Str("student_id", req.StudentID).
		Str("course", req.ClassName).
		Str("assignment", req.AssignmentName).
		Msg("grade deleted")
	return nil
}

// ListGrades flattens every grade into filter records and runs the
// query-driven pipeline over them. Model types never reach the filters.
func (s *Service) ListGrades(query GradeQuery) []filter.Record {
	s.mu.Lock()
	records := s.flattenGrades()
	s.mu.Unlock()

	chain := buildChain(query)
	return chain.Apply(records)
}

func (s *Service) flattenGrades() []filter.Record {
	var records []filter.Record
	for _, student := range s.book.Students() {
		for _, course := range student.Classes() {
			for _, a := range student.Assignments(course) {
				records = append(records, filter.Record{
					"student_id":      student.ID(),
					"name":            student.Name(),
					"class_name":      course,
					"assignment_name": a.Name(),
					"assignment_type": string(a.Kind()),
					"points":          a.Points(),
					"max_points":      a.MaxPoints(),
					"score":           a.Percentage(),
					"week":            a.Week(),
				})
			}
		}
	}
	return records
}

func buildChain(query GradeQuery) *filter.Chain {
	chain := &filter.Chain{}

	if query.Type != "" {
		chain.Add(filter.ByAssignmentType{Type: query.Type})
	}
	if query.Student != "" {
		chain.Add(filter.ByStudentName{Name: query.Student})
	}
	if query.LateOnly {
		chain.Add(filter.LateOnly{})
	}
	if query.MinScore != nil || query.MaxScore != nil {
		scoreRange := filter.NewScoreRange()
		if query.MinScore != nil {
			scoreRange.Min = *query.MinScore
		}
		if query.MaxScore != nil {
			scoreRange.Max = *query.MaxScore
		}
		chain.Add(scoreRange)
	}
	if query.Week != nil {
		chain.Add(filter.ByWeek{Week: *query.Week})
	}
	if query.PassingOnly || query.PassingScore != nil {
		passing := filter.NewPassing()
		if query.PassingScore != nil {
			passing.MinScore = *query.PassingScore
		}
		chain.Add(passing)
	}

	return chain
}

// ClassRoster lists the students enrolled in a course, in roster order.
func (s *Service) ClassRoster(course string) []dto.RosterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := s.book.ClassRoster(course)
	entries := make([]dto.RosterEntry, 0, len(roster))
	for _, student := range roster {
		entries = append(entries, dto.NewRosterEntry(student, course))
	}
	return entries
}

// ClassAverage reports the class-wide average: the mean of each enrolled
// student's own class average.
func (s *Service) ClassAverage(course string) dto.AverageResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.AverageResponse{
		Course:  course,
		Average: dto.AveragePtr(s.book.ClassAverage(course)),
	}
}
