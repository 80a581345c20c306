package service

import "github.com/campushub/student-assist-api/internal/models"

// VisibleStudents returns the subset of the roster the principal may see.
// The head of department sees everything; every other role is restricted by
// an equality predicate on its scope attribute. Unknown roles and unset
// scopes see nothing. The function is pure and never mutates its input.
func VisibleStudents(p models.Principal, students []models.Student) []models.Student {
	switch p.Role {
	case models.RoleHOD:
		return students
	case models.RoleMentor:
		if p.MentorID == nil {
			return nil
		}
		visible := make([]models.Student, 0)
		for _, s := range students {
			if s.MentorID == *p.MentorID {
				visible = append(visible, s)
			}
		}
		return visible
	case models.RoleClassTeacher:
		if p.ClassAssigned == nil {
			return nil
		}
		visible := make([]models.Student, 0)
		for _, s := range students {
			if s.ClassAssigned == *p.ClassAssigned {
				visible = append(visible, s)
			}
		}
		return visible
	case models.RoleStudent:
		if p.StudentID == nil {
			return nil
		}
		visible := make([]models.Student, 0)
		for _, s := range students {
			if s.RollNumber == *p.StudentID {
				visible = append(visible, s)
			}
		}
		return visible
	default:
		return nil
	}
}
