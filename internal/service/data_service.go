package service

import (
	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/store"
)

// DataService exposes persistence: snapshot save/load, CSV import and the
// report/CSV exports.
type DataService interface {
	Save(filename string) (dto.FileResponse, error)
	Load(filename string) (dto.FileResponse, error)
	ImportGrades(path string) (store.ImportResult, error)
	ImportStudents(path string) (dto.ImportStudentsResponse, error)
	ExportReport(filename string) (dto.FileResponse, error)
	ExportGrades(filename string) (dto.FileResponse, error)
	ExportRoster(course, filename string) (dto.FileResponse, error)
}

// Save writes the current gradebook snapshot.
func (s *Service) Save(filename string) (dto.FileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.store.SaveGradebook(s.book, filename)
	if err != nil {
		return dto.FileResponse{}, err
	}
	return dto.FileResponse{Path: path}, nil
}

// Load replaces the in-memory gradebook with a saved snapshot.
func (s *Service) Load(filename string) (dto.FileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.LoadGradebook(filename)
	if err != nil {
		return dto.FileResponse{}, err
	}
	s.book = book

	return dto.FileResponse{Path: s.store.DataDir()}, nil
}

// ImportGrades merges grade rows from a CSV file into the gradebook.
// Partial success is normal; the result counts imported and skipped rows.
func (s *Service) ImportGrades(path string) (store.ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ImportGradesCSV(s.book, path)
}

// ImportStudents merges student rows from a CSV file into the gradebook.
func (s *Service) ImportStudents(path string) (dto.ImportStudentsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported, err := s.store.ImportStudentsCSV(s.book, path)
	if err != nil {
		return dto.ImportStudentsResponse{}, err
	}
	return dto.ImportStudentsResponse{Imported: imported}, nil
}

// ExportReport writes the grades summary report.
func (s *Service) ExportReport(filename string) (dto.FileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.store.ExportReport(s.book, filename)
	if err != nil {
		return dto.FileResponse{}, err
	}
	return dto.FileResponse{Path: path}, nil
}

// ExportGrades writes every grade as CSV rows.
func (s *Service) ExportGrades(filename string) (dto.FileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.store.ExportGradesCSV(s.book, filename)
	if err != nil {
		return dto.FileResponse{}, err
	}
	return dto.FileResponse{Path: path}, nil
}

// ExportRoster writes the roster for one course.
func (s *Service) ExportRoster(course, filename string) (dto.FileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.store.ExportClassRoster(s.book, course, filename)
	if err != nil {
		return dto.FileResponse{}, err
	}
	return dto.FileResponse{Path: path}, nil
}
