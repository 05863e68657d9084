package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

func newTestStore(t *testing.T) *DataStore {
	t.Helper()
	d, err := New(t.TempDir(), zerolog.New(io.Discard))
	require.NoError(t, err)
	return d
}

func newSeededGradebook(t *testing.T) *gradebook.Gradebook {
	t.Helper()
	g := gradebook.New()

	s1, err := gradebook.NewStudent("s001", "John Kirk", "Information Science")
	require.NoError(t, err)
	s1.Enroll("INST326")
	s2, err := gradebook.NewStudent("s002", "Sarah Williams", "Computer Science")
	require.NoError(t, err)
	s2.Enroll("INST326")
	g.AddStudent(s1)
	g.AddStudent(s2)

	for _, row := range []struct {
		studentID, kind, name string
		points, maxPoints     float64
		week                  int
	}{
		{"s001", "homework", "Lab 1", 18, 20, 1},
		{"s001", "quiz", "Quiz 1", 9, 10, 2},
		{"s002", "project", "Project 1", 92, 100, 5},
	} {
		a, err := gradebook.NewAssignment(row.kind, row.name, row.points, row.maxPoints, row.week)
		require.NoError(t, err)
		require.NoError(t, g.AddGrade(row.studentID, "INST326", a))
	}

	teacher, err := gradebook.NewTeacher("t001", "Dr. Johnson", "Information Science")
	require.NoError(t, err)
	teacher.AddCourse("INST326")
	g.AddTeacher(teacher)

	return g
}

func TestSaveAndLoadGradebook(t *testing.T) {
	d := newTestStore(t)
	g := newSeededGradebook(t)

	path, err := d.SaveGradebook(g, "")
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, filepath.Join(d.DataDir(), DefaultSnapshotFile), path)

	loaded, err := d.LoadGradebook("")
	require.NoError(t, err)

	require.Len(t, loaded.Students(), 2)
	require.Len(t, loaded.Teachers(), 1)

	s1, ok := loaded.Student("s001")
	require.True(t, ok)
	require.Equal(t, "John Kirk", s1.Name())
	require.Equal(t, []string{"INST326"}, s1.Classes())

	assignments := s1.Assignments("INST326")
	require.Len(t, assignments, 2)

	avg, ok := loaded.ClassAverage("INST326")
	require.True(t, ok)
	original, _ := g.ClassAverage("INST326")
	require.Equal(t, original, avg)
}

func TestSaveGradebookPersistedLayout(t *testing.T) {
	d := newTestStore(t)
	g := newSeededGradebook(t)

	path, err := d.SaveGradebook(g, "layout.json")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Contains(t, snapshot, "students")
	require.Contains(t, snapshot, "teachers")
	require.Contains(t, snapshot["students"], "s001")

	var student struct {
		StudentID string   `json:"student_id"`
		Classes   []string `json:"classes"`
		Grades    map[string]map[string]struct {
			Type      string  `json:"type"`
			Points    float64 `json:"points"`
			MaxPoints float64 `json:"max_points"`
			Week      int     `json:"week"`
		} `json:"grades"`
	}
	require.NoError(t, json.Unmarshal(snapshot["students"]["s001"], &student))
	require.Equal(t, "s001", student.StudentID)
	require.Equal(t, "Quiz", student.Grades["INST326"]["Quiz 1"].Type)
	require.Equal(t, 9.0, student.Grades["INST326"]["Quiz 1"].Points)
	require.Equal(t, 2, student.Grades["INST326"]["Quiz 1"].Week)
}

func TestLoadGradebookMissingFile(t *testing.T) {
	d := newTestStore(t)

	_, err := d.LoadGradebook("nope.json")
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestLoadGradebookCorruptJSON(t *testing.T) {
	d := newTestStore(t)
	path := filepath.Join(d.DataDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := d.LoadGradebook("broken.json")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSnapshotNotFound)
}

func TestExportReport(t *testing.T) {
	d := newTestStore(t)
	g := newSeededGradebook(t)

	// an enrolled but ungraded student must report a null average
	s3, err := gradebook.NewStudent("s003", "Maria Rodriguez", "Business")
	require.NoError(t, err)
	s3.Enroll("INST326")
	g.AddStudent(s3)

	path, err := d.ExportReport(g, "")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))

	require.Equal(t, 3, report.Summary.TotalStudents)
	require.Equal(t, 1, report.Summary.TotalTeachers)
	require.Len(t, report.Students, 3)

	byID := make(map[string]StudentReport)
	for _, sr := range report.Students {
		byID[sr.StudentID] = sr
	}

	require.NotNil(t, byID["s001"].OverallAverage)
	// homework 18/20 is 90, quiz 9/10 scales to 108 and caps at 100
	require.Equal(t, 95.0, *byID["s001"].OverallAverage)
	require.Nil(t, byID["s003"].OverallAverage)

	require.Len(t, byID["s001"].Classes, 1)
	require.Equal(t, "INST326", byID["s001"].Classes[0].ClassName)
	require.Equal(t, 2, byID["s001"].Classes[0].AssignmentCount)
}

func TestExportGradesCSV(t *testing.T) {
	d := newTestStore(t)
	g := newSeededGradebook(t)

	path, err := d.ExportGradesCSV(g, "")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{
		"student_id", "student_name", "major", "class_name",
		"assignment_name", "assignment_type", "points", "max_points",
		"percentage", "week",
	}, rows[0])
	require.Len(t, rows, 4) // header + 3 grades

	byAssignment := make(map[string][]string)
	for _, row := range rows[1:] {
		byAssignment[row[4]] = row
	}
	require.Equal(t, "Quiz", byAssignment["Quiz 1"][5])
	require.Equal(t, "100", byAssignment["Quiz 1"][8])
	require.Equal(t, "82.8", byAssignment["Project 1"][8])
}

func TestExportClassRoster(t *testing.T) {
	d := newTestStore(t)
	g := newSeededGradebook(t)

	_, err := d.ExportClassRoster(g, "PHYS161", "")
	require.ErrorIs(t, err, gradebook.ErrNotFound)

	path, err := d.ExportClassRoster(g, "INST326", "")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"student_id", "name", "major", "class_average"}, rows[0])
	require.Len(t, rows, 3)
	require.Equal(t, "s001", rows[1][0])
	require.Equal(t, "95", rows[1][3])
}
