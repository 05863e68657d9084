package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// ImportResult summarises a row-level fault-tolerant CSV import. Partial
// success is normal: malformed rows are skipped and counted, not fatal.
type ImportResult struct {
	Imported int    `json:"imported"`
	Errors   int    `json:"errors"`
	Message  string `json:"message"`
}

// ImportGradesCSV reads grade rows into the gradebook. Expected header:
//
//	student_id,student_name,class_name,assignment_name,assignment_type,points,max_points,week
//
// Students seen for the first time are created and auto-enrolled. Rows
// missing a required field, or with unparseable numbers, are skipped and
// counted as errors. Unknown assignment types default to Homework.
func (d *DataStore) ImportGradesCSV(g *gradebook.Gradebook, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := columnIndex(header)

	var result ImportResult
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors++
			continue
		}

		if err := d.importGradeRow(g, columns, row); err != nil {
			result.Errors++
			continue
		}
		result.Imported++
	}

	result.Message = fmt.Sprintf("Imported %d grades", result.Imported)
	if result.Errors > 0 {
		result.Message += fmt.Sprintf(" with %d errors", result.Errors)
	}

	d.logger.Info().
		Str("path", path).
		Int("imported", result.Imported).
		Int("errors", result.Errors).
		Msg("grade CSV import finished")

	return result, nil
}

func (d *DataStore) importGradeRow(g *gradebook.Gradebook, columns map[string]int, row []string) error {
	studentID := cell(columns, row, "student_id")
	studentName := cell(columns, row, "student_name")
	className := cell(columns, row, "class_name")
	assignmentName := cell(columns, row, "assignment_name")

	if studentID == "" || studentName == "" || className == "" || assignmentName == "" {
		return fmt.Errorf("%w: missing required fields", gradebook.ErrInvalidArgument)
	}

	points, err := parseFloatCell(cell(columns, row, "points"), 0)
	if err != nil {
		return err
	}
	maxPoints, err := parseFloatCell(cell(columns, row, "max_points"), 100)
	if err != nil {
		return err
	}
	week, err := parseIntCell(cell(columns, row, "week"), 1)
	if err != nil {
		return err
	}

	student, ok := g.Student(studentID)
	if !ok {
		student, err = gradebook.NewStudent(studentID, studentName, "")
		if err != nil {
			return err
		}
		g.AddStudent(student)
	}
	student.Enroll(className)

	assignment, err := gradebook.NewAssignment(
		cell(columns, row, "assignment_type"), assignmentName, points, maxPoints, week)
	if err != nil {
		return err
	}

	return student.AddAssignment(className, assignment)
}

// ImportStudentsCSV reads student rows. Expected header:
//
//	student_id,name,major,classes
//
// with classes as a comma-separated course list. Rows missing an id or name
// are silently skipped.
func (d *DataStore) ImportStudentsCSV(g *gradebook.Gradebook, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := columnIndex(header)

	imported := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		id := cell(columns, row, "student_id")
		name := cell(columns, row, "name")
		if id == "" || name == "" {
			continue
		}

		student, err := gradebook.NewStudent(id, name, cell(columns, row, "major"))
		if err != nil {
			continue
		}
		for _, course := range strings.Split(cell(columns, row, "classes"), ",") {
			if course = strings.TrimSpace(course); course != "" {
				student.Enroll(course)
			}
		}

		g.AddStudent(student)
		imported++
	}

	d.logger.Info().Str("path", path).Int("imported", imported).Msg("student CSV import finished")
	return imported, nil
}

// ExportGradesCSV writes one row per (student, course, assignment) triple
// and returns the path written.
func (d *DataStore) ExportGradesCSV(g *gradebook.Gradebook, filename string) (string, error) {
	path := d.path(filename, DefaultGradesFile)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{
		"student_id", "student_name", "major", "class_name",
		"assignment_name", "assignment_type", "points", "max_points",
		"percentage", "week",
	}); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	for _, student := range g.Students() {
		for _, course := range student.Classes() {
			for _, a := range student.Assignments(course) {
				row := []string{
					student.ID(),
					student.Name(),
					student.Major(),
					course,
					a.Name(),
					string(a.Kind()),
					formatFloat(a.Points()),
					formatFloat(a.MaxPoints()),
					formatFloat(round2(a.Percentage())),
					strconv.Itoa(a.Week()),
				}
				if err := writer.Write(row); err != nil {
					return "", fmt.Errorf("failed to write CSV: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	d.logger.Info().Str("path", path).Msg("grades exported")
	return path, nil
}

// ExportClassRoster writes the roster for one course with each student's
// class average. An empty roster is an error rather than an empty file.
func (d *DataStore) ExportClassRoster(g *gradebook.Gradebook, course, filename string) (string, error) {
	roster := g.ClassRoster(course)
	if len(roster) == 0 {
		return "", fmt.Errorf("%w: no students in %s", gradebook.ErrNotFound, course)
	}

	path := d.path(filename, course+"_roster.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"student_id", "name", "major", "class_average"}); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	for _, student := range roster {
		average := "N/A"
		if avg, ok := student.ClassAverage(course); ok {
			average = formatFloat(avg)
		}
		if err := writer.Write([]string{student.ID(), student.Name(), student.Major(), average}); err != nil {
			return "", fmt.Errorf("failed to write CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	d.logger.Info().Str("path", path).Str("course", course).Msg("roster exported")
	return path, nil
}

func columnIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return columns
}

func cell(columns map[string]int, row []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseFloatCell(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

func parseIntCell(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
