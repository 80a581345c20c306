package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/student-assist-api/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func sampleRoster() []models.Student {
	return []models.Student{
		{RollNumber: "S42", FullName: "Asha Rao", ClassAssigned: "A", MentorID: 1},
		{RollNumber: "S43", FullName: "Ravi Kumar", ClassAssigned: "B", MentorID: 2},
		{RollNumber: "S44", FullName: "Mei Lin", ClassAssigned: "A", MentorID: 2},
		{RollNumber: "S45", FullName: "Tomas Ortiz", ClassAssigned: "C", MentorID: 3},
	}
}

func TestVisibleStudentsHOD(t *testing.T) {
	roster := sampleRoster()
	visible := VisibleStudents(models.Principal{Role: models.RoleHOD}, roster)
	assert.Equal(t, roster, visible)
}

func TestVisibleStudentsMentor(t *testing.T) {
	visible := VisibleStudents(models.Principal{Role: models.RoleMentor, MentorID: int64Ptr(2)}, sampleRoster())
	require.Len(t, visible, 2)
	for _, s := range visible {
		assert.Equal(t, int64(2), s.MentorID)
	}
}

func TestVisibleStudentsClassTeacher(t *testing.T) {
	visible := VisibleStudents(models.Principal{Role: models.RoleClassTeacher, ClassAssigned: strPtr("A")}, sampleRoster())
	require.Len(t, visible, 2)
	for _, s := range visible {
		assert.Equal(t, "A", s.ClassAssigned)
	}
}

func TestVisibleStudentsStudent(t *testing.T) {
	visible := VisibleStudents(models.Principal{Role: models.RoleStudent, StudentID: strPtr("S42")}, sampleRoster())
	require.Len(t, visible, 1)
	assert.Equal(t, "S42", visible[0].RollNumber)
}

func TestVisibleStudentsUnknownRole(t *testing.T) {
	assert.Empty(t, VisibleStudents(models.Principal{Role: "JANITOR"}, sampleRoster()))
	assert.Empty(t, VisibleStudents(models.Principal{}, sampleRoster()))
}

func TestVisibleStudentsMissingScope(t *testing.T) {
	assert.Empty(t, VisibleStudents(models.Principal{Role: models.RoleMentor}, sampleRoster()))
	assert.Empty(t, VisibleStudents(models.Principal{Role: models.RoleClassTeacher}, sampleRoster()))
	assert.Empty(t, VisibleStudents(models.Principal{Role: models.RoleStudent}, sampleRoster()))
}

// Mentor filtering over random rosters: the result is exactly the subset with
// the mentor's id, and nothing else.
func TestVisibleStudentsMentorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40)
		roster := make([]models.Student, n)
		want := 0
		for i := range roster {
			roster[i] = models.Student{
				RollNumber: string(rune('A' + i%26)),
				MentorID:   int64(rng.Intn(4)),
			}
			if roster[i].MentorID == 2 {
				want++
			}
		}

		visible := VisibleStudents(models.Principal{Role: models.RoleMentor, MentorID: int64Ptr(2)}, roster)
		assert.Len(t, visible, want)
		for _, s := range visible {
			assert.Equal(t, int64(2), s.MentorID)
		}
		assert.LessOrEqual(t, len(visible), len(roster))
	}
}
