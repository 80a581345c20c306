package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/student-assist-api/internal/models"
)

func TestLandingPath(t *testing.T) {
	cases := []struct {
		name      string
		principal models.Principal
		want      string
	}{
		{"hod", models.Principal{Role: models.RoleHOD}, "/dashboard/hod"},
		{"mentor 2", models.Principal{Role: models.RoleMentor, MentorID: int64Ptr(2)}, "/dashboard/mentor/2"},
		{"class B", models.Principal{Role: models.RoleClassTeacher, ClassAssigned: strPtr("B")}, "/dashboard/class/B"},
		{"student", models.Principal{Role: models.RoleStudent}, "/dashboard/student"},
		{"mentor without scope", models.Principal{Role: models.RoleMentor}, "/login"},
		{"unknown mentor scope", models.Principal{Role: models.RoleMentor, MentorID: int64Ptr(9)}, "/login"},
		{"unknown role", models.Principal{Role: "JANITOR"}, "/login"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LandingPath(tc.principal))
		})
	}
}
