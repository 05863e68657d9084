package service

import (
	"fmt"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// TeacherService exposes teacher registration and course-load use cases.
type TeacherService interface {
	CreateTeacher(req dto.TeacherCreateRequest) (dto.TeacherResponse, error)
	ListTeachers() []dto.TeacherResponse
	GetTeacher(id string) (dto.TeacherResponse, error)
	AddTeacherCourse(id, course string) (dto.TeacherResponse, error)
	RemoveTeacherCourse(id, course string) (dto.TeacherResponse, error)
	TeacherDashboard(id string) (dto.TeacherDashboardResponse, error)
}

// CreateTeacher registers a teacher. Reusing an existing id replaces the
// prior entry.
func (s *Service) CreateTeacher(req dto.TeacherCreateRequest) (dto.TeacherResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher, err := gradebook.NewTeacher(req.TeacherID, req.Name, req.Department)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	for _, course := range req.Courses {
		teacher.AddCourse(course)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.book.AddTeacher(teacher)

	s.logger.Info().Str("teacher_id", teacher.ID()).Msg("teacher registered")
	return dto.NewTeacherResponse(teacher), nil
}

// ListTeachers returns every teacher in insertion order.
func (s *Service) ListTeachers() []dto.TeacherResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.NewTeacherResponseSlice(s.book.Teachers())
}

// GetTeacher looks up a single teacher.
func (s *Service) GetTeacher(id string) (dto.TeacherResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.book.Teacher(id)
	if !ok {
		return dto.TeacherResponse{}, fmt.Errorf("%w: teacher %q", gradebook.ErrNotFound, id)
	}
	return dto.NewTeacherResponse(teacher), nil
}

// AddTeacherCourse appends a course to the teaching load; idempotent.
func (s *Service) AddTeacherCourse(id, course string) (dto.TeacherResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.book.Teacher(id)
	if !ok {
		return dto.TeacherResponse{}, fmt.Errorf("%w: teacher %q", gradebook.ErrNotFound, id)
	}
	teacher.AddCourse(course)

	s.logger.Info().Str("teacher_id", id).Str("course", course).Msg("course added")
	return dto.NewTeacherResponse(teacher), nil
}

// RemoveTeacherCourse drops a course from the teaching load; removing an
// absent course is a no-op.
func (s *Service) RemoveTeacherCourse(id, course string) (dto.TeacherResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.book.Teacher(id)
	if !ok {
		return dto.TeacherResponse{}, fmt.Errorf("%w: teacher %q", gradebook.ErrNotFound, id)
	}
	teacher.RemoveCourse(course)

	s.logger.Info().Str("teacher_id", id).Str("course", course).Msg("course removed")
	return dto.NewTeacherResponse(teacher), nil
}

// TeacherDashboard assembles class averages and rosters for every course
// the teacher runs.
func (s *Service) TeacherDashboard(id string) (dto.TeacherDashboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.book.Teacher(id)
	if !ok {
		return dto.TeacherDashboardResponse{}, fmt.Errorf("%w: teacher %q", gradebook.ErrNotFound, id)
	}

	resp := dto.TeacherDashboardResponse{
		TeacherID:  teacher.ID(),
		Name:       teacher.Name(),
		Department: teacher.Department(),
		Courses:    make([]dto.CourseSummary, 0, len(teacher.Courses())),
	}

	for _, course := range teacher.Courses() {
		roster := s.book.ClassRoster(course)
		summary := dto.CourseSummary{
			Course:       course,
			ClassAverage: dto.AveragePtr(s.book.ClassAverage(course)),
			Enrolled:     len(roster),
			Roster:       make([]dto.RosterEntry, 0, len(roster)),
		}
		for _, student := range roster {
			summary.Roster = append(summary.Roster, dto.NewRosterEntry(student, course))
		}
		resp.Courses = append(resp.Courses, summary)
	}

	return resp, nil
}
