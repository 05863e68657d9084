package gradebook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGradebook(t *testing.T) *Gradebook {
	t.Helper()
	g := New()

	for _, row := range []struct {
		id, name, major string
		classes         []string
	}{
		{"s001", "John Kirk", "Information Science", []string{"INST326", "ENGL101"}},
		{"s002", "Sarah Williams", "Computer Science", []string{"INST326"}},
		{"s003", "Maria Rodriguez", "Business", []string{"BMGT110"}},
	} {
		s, err := NewStudent(row.id, row.name, row.major)
		require.NoError(t, err)
		for _, course := range row.classes {
			s.Enroll(course)
		}
		g.AddStudent(s)
	}

	return g
}

func TestGradebookAddStudentReplacesByID(t *testing.T) {
	g := newTestGradebook(t)

	replacement, err := NewStudent("s001", "Johnny Kirk", "Physics")
	require.NoError(t, err)
	g.AddStudent(replacement)

	s, ok := g.Student("s001")
	require.True(t, ok)
	require.Equal(t, "Johnny Kirk", s.Name())
	require.Len(t, g.Students(), 3)

	// replacement keeps the original roster position
	require.Equal(t, "s001", g.Students()[0].ID())
}

func TestGradebookAddGrade(t *testing.T) {
	g := newTestGradebook(t)

	err := g.AddGrade("missing", "INST326", mustAssignment(t, "quiz", "Quiz 1", 9, 10, 2))
	require.ErrorIs(t, err, ErrNotFound)

	// not enrolled surfaces from the student; nothing is recorded
	err = g.AddGrade("s003", "INST326", mustAssignment(t, "quiz", "Quiz 1", 9, 10, 2))
	require.ErrorIs(t, err, ErrNotEnrolled)
	s3, _ := g.Student("s003")
	require.Nil(t, s3.Assignments("INST326"))

	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "quiz", "Quiz 1", 9, 10, 2)))
	s1, _ := g.Student("s001")
	require.Len(t, s1.Assignments("INST326"), 1)
}

func TestGradebookUpdateAndDeleteGrade(t *testing.T) {
	g := newTestGradebook(t)
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "homework", "Lab 1", 18, 20, 1)))

	require.ErrorIs(t, g.UpdateGrade("missing", "INST326", "Lab 1", 19, 20), ErrNotFound)
	require.NoError(t, g.UpdateGrade("s001", "INST326", "Lab 1", 19, 20))

	require.ErrorIs(t, g.DeleteGrade("s001", "INST326", "Lab 9"), ErrNotFound)
	require.NoError(t, g.DeleteGrade("s001", "INST326", "Lab 1"))
}

func TestGradebookClassRosterInsertionOrder(t *testing.T) {
	g := newTestGradebook(t)

	roster := g.ClassRoster("INST326")
	require.Len(t, roster, 2)
	require.Equal(t, "s001", roster[0].ID())
	require.Equal(t, "s002", roster[1].ID())

	require.Empty(t, g.ClassRoster("PHYS161"))
}

func TestGradebookClassAverageIsAverageOfStudentAverages(t *testing.T) {
	g := newTestGradebook(t)

	// s001 has three assignments averaging 80; s002 has one at 100. The
	// class average weights by student (90.0), not by assignment count
	// (a flat mean over the four scores would be 85.0).
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "homework", "Lab 1", 80, 100, 1)))
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "homework", "Lab 2", 80, 100, 2)))
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "exam", "Midterm", 80, 100, 8)))
	require.NoError(t, g.AddGrade("s002", "INST326", mustAssignment(t, "homework", "Lab 1", 100, 100, 1)))

	avg, ok := g.ClassAverage("INST326")
	require.True(t, ok)
	require.Equal(t, 90.0, avg)
}

func TestGradebookClassAverageSkipsStudentsWithoutGrades(t *testing.T) {
	g := newTestGradebook(t)

	// both INST326 students enrolled, only one graded
	require.NoError(t, g.AddGrade("s002", "INST326", mustAssignment(t, "homework", "Lab 1", 90, 100, 1)))

	avg, ok := g.ClassAverage("INST326")
	require.True(t, ok)
	require.Equal(t, 90.0, avg)
}

func TestGradebookClassAverageNoValue(t *testing.T) {
	g := newTestGradebook(t)

	// empty roster
	_, ok := g.ClassAverage("PHYS161")
	require.False(t, ok)

	// roster with no graded work
	_, ok = g.ClassAverage("INST326")
	require.False(t, ok)
}

func TestGradebookRecordRoundTrip(t *testing.T) {
	g := newTestGradebook(t)
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "homework", "Lab 1", 18, 20, 1)))
	require.NoError(t, g.AddGrade("s001", "INST326", mustAssignment(t, "quiz", "Quiz 1", 9, 10, 2)))
	require.NoError(t, g.AddGrade("s002", "INST326", mustAssignment(t, "project", "Project 1", 92, 100, 5)))

	teacher, err := NewTeacher("t001", "Dr. Johnson", "Information Science")
	require.NoError(t, err)
	teacher.AddCourse("INST326")
	g.AddTeacher(teacher)

	rebuilt, err := FromRecord(g.Record())
	require.NoError(t, err)

	require.Len(t, rebuilt.Students(), 3)
	require.Len(t, rebuilt.Teachers(), 1)

	for _, original := range g.Students() {
		loaded, ok := rebuilt.Student(original.ID())
		require.True(t, ok)
		require.Equal(t, original.Name(), loaded.Name())
		require.Equal(t, original.Major(), loaded.Major())
		require.ElementsMatch(t, original.Classes(), loaded.Classes())

		for _, course := range original.Classes() {
			originalAssignments := original.Assignments(course)
			loadedAssignments := loaded.Assignments(course)
			require.Len(t, loadedAssignments, len(originalAssignments))
			for i, a := range originalAssignments {
				require.Equal(t, a.Kind(), loadedAssignments[i].Kind())
				require.Equal(t, a.Name(), loadedAssignments[i].Name())
				require.Equal(t, a.Points(), loadedAssignments[i].Points())
				require.Equal(t, a.MaxPoints(), loadedAssignments[i].MaxPoints())
				require.Equal(t, a.Week(), loadedAssignments[i].Week())
			}
		}
	}

	loadedTeacher, ok := rebuilt.Teacher("t001")
	require.True(t, ok)
	require.Equal(t, []string{"INST326"}, loadedTeacher.Courses())
}

func TestGradebookRemoveStudent(t *testing.T) {
	g := newTestGradebook(t)

	g.RemoveStudent("s002")
	require.Len(t, g.Students(), 2)
	_, ok := g.Student("s002")
	require.False(t, ok)

	// unknown id is a no-op
	g.RemoveStudent("missing")
	require.Len(t, g.Students(), 2)
}
