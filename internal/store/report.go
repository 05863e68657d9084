package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// Report is the exported grades summary. Averages are pointers: null means
// there was nothing to average, which is distinct from a 0% average.
type Report struct {
	Summary  ReportSummary   `json:"summary"`
	Students []StudentReport `json:"students"`
}

// ReportSummary carries headline counts.
type ReportSummary struct {
	TotalStudents int `json:"total_students"`
	TotalTeachers int `json:"total_teachers"`
}

// StudentReport summarises one student across all their classes.
type StudentReport struct {
	StudentID      string        `json:"student_id"`
	Name           string        `json:"name"`
	Major          string        `json:"major"`
	OverallAverage *float64      `json:"overall_average"`
	Classes        []ClassReport `json:"classes"`
}

// ClassReport summarises one student's standing in one class.
type ClassReport struct {
	ClassName       string   `json:"class_name"`
	Average         *float64 `json:"average"`
	AssignmentCount int      `json:"assignment_count"`
}

// BuildReport assembles the grades summary for the whole gradebook.
func BuildReport(g *gradebook.Gradebook) Report {
	report := Report{
		Summary: ReportSummary{
			TotalStudents: len(g.Students()),
			TotalTeachers: len(g.Teachers()),
		},
		Students: make([]StudentReport, 0, len(g.Students())),
	}

	for _, student := range g.Students() {
		sr := StudentReport{
			StudentID:      student.ID(),
			Name:           student.Name(),
			Major:          student.Major(),
			OverallAverage: averagePtr(student.OverallAverage()),
			Classes:        make([]ClassReport, 0, len(student.Classes())),
		}

		for _, course := range student.Classes() {
			sr.Classes = append(sr.Classes, ClassReport{
				ClassName:       course,
				Average:         averagePtr(student.ClassAverage(course)),
				AssignmentCount: len(student.Assignments(course)),
			})
		}

		report.Students = append(report.Students, sr)
	}

	return report
}

// ExportReport writes the grades summary as indented JSON and returns the
// path written.
func (d *DataStore) ExportReport(g *gradebook.Gradebook, filename string) (string, error) {
	path := d.path(filename, DefaultReportFile)

	data, err := json.MarshalIndent(BuildReport(g), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to export report: %w", err)
	}

	d.logger.Info().Str("path", path).Msg("report exported")
	return path, nil
}

func averagePtr(avg float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &avg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
