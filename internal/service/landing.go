package service

import (
	"strconv"

	"github.com/campushub/student-assist-api/internal/models"
)

type landingKey struct {
	role  models.UserRole
	scope string
}

// landingPaths is the declarative (role, scope) dispatch table for post-login
// destinations. Roles without a sub-scope key on the empty string.
var landingPaths = map[landingKey]string{
	{models.RoleHOD, ""}:           "/dashboard/hod",
	{models.RoleMentor, "1"}:       "/dashboard/mentor/1",
	{models.RoleMentor, "2"}:       "/dashboard/mentor/2",
	{models.RoleMentor, "3"}:       "/dashboard/mentor/3",
	{models.RoleClassTeacher, "A"}: "/dashboard/class/A",
	{models.RoleClassTeacher, "B"}: "/dashboard/class/B",
	{models.RoleClassTeacher, "C"}: "/dashboard/class/C",
	{models.RoleStudent, ""}:       "/dashboard/student",
}

// LandingPath resolves the landing destination for a principal. Identities
// outside the table fall back to the login entry point.
func LandingPath(p models.Principal) string {
	key := landingKey{role: p.Role}
	switch p.Role {
	case models.RoleMentor:
		if p.MentorID != nil {
			key.scope = strconv.FormatInt(*p.MentorID, 10)
		}
	case models.RoleClassTeacher:
		if p.ClassAssigned != nil {
			key.scope = *p.ClassAssigned
		}
	}
	if path, ok := landingPaths[key]; ok {
		return path
	}
	return "/login"
}
