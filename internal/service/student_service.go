package service

import (
	"fmt"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// StudentService exposes student registration and enrollment use cases.
type StudentService interface {
	CreateStudent(req dto.StudentCreateRequest) (dto.StudentResponse, error)
	ListStudents() []dto.StudentResponse
	GetStudent(id string) (dto.StudentResponse, error)
	DeleteStudent(id string) error
	EnrollStudent(id, course string) (dto.StudentResponse, error)
	DropStudent(id, course string) (dto.StudentResponse, error)
	StudentOverallAverage(id string) (dto.AverageResponse, error)
	StudentDashboard(id string) (dto.StudentDashboardResponse, error)
}

// CreateStudent registers a student, optionally pre-enrolled in classes.
// Reusing an existing id replaces the prior entry.
func (s *Service) CreateStudent(req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	student, err := gradebook.NewStudent(req.StudentID, req.Name, req.Major)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	for _, course := range req.Classes {
		student.Enroll(course)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.book.AddStudent(student)

	s.logger.Info().Str("student_id", student.ID()).Msg("student registered")
	return dto.NewStudentResponse(student), nil
}

// ListStudents returns every student in roster order.
func (s *Service) ListStudents() []dto.StudentResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.NewStudentResponseSlice(s.book.Students())
}

// GetStudent looks up a single student.
func (s *Service) GetStudent(id string) (dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.book.Student(id)
	if !ok {
		return dto.StudentResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	return dto.NewStudentResponse(student), nil
}

// DeleteStudent removes a student and all of their grades.
func (s *Service) DeleteStudent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.book.Student(id); !ok {
		return fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	s.book.RemoveStudent(id)

	s.logger.Info().Str("student_id", id).Msg("student removed")
	return nil
}

// EnrollStudent adds the student to a course. Enrolling twice is a no-op.
func (s *Service) EnrollStudent(id, course string) (dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.book.Student(id)
	if !ok {
		return dto.StudentResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	student.Enroll(course)

	s.logger.Info().Str("student_id", id).Str("course", course).Msg("student enrolled")
	return dto.NewStudentResponse(student), nil
}

// DropStudent removes the student from a course, discarding its grades.
func (s *Service) DropStudent(id, course string) (dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.book.Student(id)
	if !ok {
		return dto.StudentResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	student.Drop(course)

	s.logger.Info().Str("student_id", id).Str("course", course).Msg("student dropped course")
	return dto.NewStudentResponse(student), nil
}

// StudentOverallAverage reports the student's average across every class.
func (s *Service) StudentOverallAverage(id string) (dto.AverageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.book.Student(id)
	if !ok {
		return dto.AverageResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	return dto.AverageResponse{Average: dto.AveragePtr(student.OverallAverage())}, nil
}

// StudentDashboard assembles per-class averages and grades for one student.
func (s *Service) StudentDashboard(id string) (dto.StudentDashboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.book.Student(id)
	if !ok {
		return dto.StudentDashboardResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
	}
	return dto.NewStudentDashboardResponse(student), nil
}
