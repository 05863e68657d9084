// Package service exposes the gradebook use cases behind narrow interfaces.
// One Service instance guards the single in-memory gradebook with a mutex;
// the domain types themselves are not concurrency-safe.
package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
	"github.com/rosterbook/gradebook-api/internal/store"
)

// Service implements every gradebook use case over one shared gradebook.
type Service struct {
	mu        sync.Mutex
	book      *gradebook.Gradebook
	store     *store.DataStore
	validator *validator.Validate
	logger    zerolog.Logger
}

// New builds the service around an empty gradebook.
func New(datastore *store.DataStore, validate *validator.Validate, logger zerolog.Logger) *Service {
	return &Service{
		book:      gradebook.New(),
		store:     datastore,
		validator: validate,
		logger:    logger.With().Str("component", "gradebook_service").Logger(),
	}
}

// LoadOrSeed restores the gradebook from the default snapshot. When no
// snapshot exists yet, the gradebook is seeded with the demo roster so the
// API is usable out of the box.
func (s *Service) LoadOrSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.LoadGradebook("")
	if err != nil {
		s.logger.Info().Err(err).Msg("no usable snapshot, seeding sample data")
		s.book = gradebook.New()
		s.seedSampleData()
		return
	}

	s.book = book
}

func (s *Service) seedSampleData() {
	teachers := []struct {
		id, name, department string
	}{
		{"t001", "Dr. Amanda Johnson", "Information Science"},
		{"t002", "Prof. Brian Smith", "Computer Science"},
	}
	for _, row := range teachers {
		t, err := gradebook.NewTeacher(row.id, row.name, row.department)
		if err != nil {
			continue
		}
		t.AddCourse("INST326")
		s.book.AddTeacher(t)
	}

	students := []struct {
		id, name, major string
		classes         []string
	}{
		{"s001", "John Kirk", "Information Science", []string{"INST326", "ENGL101"}},
		{"s002", "Sarah Williams", "Computer Science", []string{"INST326", "CMSC131"}},
		{"s003", "Maria Rodriguez", "Business", []string{"INST326", "BMGT110"}},
	}
	for _, row := range students {
		st, err := gradebook.NewStudent(row.id, row.name, row.major)
		if err != nil {
			continue
		}
		for _, course := range row.classes {
			st.Enroll(course)
		}
		s.book.AddStudent(st)
	}

	grades := []struct {
		studentID, course, kind, name string
		points, maxPoints             float64
		week                          int
	}{
		{"s001", "INST326", "homework", "Lab 1", 18, 20, 1},
		{"s001", "INST326", "quiz", "Quiz 1", 9, 10, 2},
		{"s001", "INST326", "exam", "Midterm", 85, 100, 8},
		{"s002", "INST326", "homework", "Lab 1", 20, 20, 1},
		{"s002", "INST326", "quiz", "Quiz 1", 8, 10, 2},
		{"s002", "INST326", "project", "Project 1", 92, 100, 5},
		{"s003", "INST326", "homework", "Lab 1", 17, 20, 1},
		{"s003", "INST326", "quiz", "Quiz 1", 7, 10, 2},
	}
	for _, row := range grades {
		a, err := gradebook.NewAssignment(row.kind, row.name, row.points, row.maxPoints, row.week)
		if err != nil {
			continue
		}
		_ = s.book.AddGrade(row.studentID, row.course, a)
	}

	s.logger.Info().
		Int("students", len(s.book.Students())).
		Int("teachers", len(s.book.Teachers())).
		Msg("sample data seeded")
}
