package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
	"github.com/rosterbook/gradebook-api/internal/store"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newGradedService(t)

	saved, err := s.Save("trip.json")
	require.NoError(t, err)
	require.FileExists(t, saved.Path)

	// mutate, then restore from the snapshot
	require.NoError(t, s.DeleteStudent("s001"))
	require.Len(t, s.ListStudents(), 2)

	_, err = s.Load("trip.json")
	require.NoError(t, err)
	require.Len(t, s.ListStudents(), 3)

	_, err = s.GetStudent("s001")
	require.NoError(t, err)
}

func TestLoadMissingSnapshot(t *testing.T) {
	s := newTestService(t)

	_, err := s.Load("absent.json")
	require.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestImportGradesIntoLiveGradebook(t *testing.T) {
	s := newTestService(t)

	path := filepath.Join(t.TempDir(), "grades.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"student_id,student_name,class_name,assignment_name,assignment_type,points,max_points,week\n"+
			"s101,Ada Lovelace,CMSC131,Lab 1,homework,10,10,1\n"+
			"s101,Ada Lovelace,CMSC131,,homework,10,10,1\n"), 0o644))

	result, err := s.ImportGrades(path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 1, result.Errors)

	resp, err := s.GetStudent("s101")
	require.NoError(t, err)
	require.Equal(t, []string{"CMSC131"}, resp.Classes)
}

func TestImportStudentsIntoLiveGradebook(t *testing.T) {
	s := newTestService(t)

	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"student_id,name,major,classes\n"+
			"s201,Grace Hopper,Computer Science,CMSC131\n"), 0o644))

	resp, err := s.ImportStudents(path)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Imported)
	require.Len(t, s.ListStudents(), 1)
}

func TestExports(t *testing.T) {
	s := newGradedService(t)

	report, err := s.ExportReport("")
	require.NoError(t, err)
	require.FileExists(t, report.Path)

	grades, err := s.ExportGrades("")
	require.NoError(t, err)
	require.FileExists(t, grades.Path)

	roster, err := s.ExportRoster("INST326", "")
	require.NoError(t, err)
	require.FileExists(t, roster.Path)

	_, err = s.ExportRoster("PHYS161", "")
	require.ErrorIs(t, err, gradebook.ErrNotFound)
}
