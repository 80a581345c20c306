package models

// Student represents a learner record as stored in the students table. The
// full row is serialized into the model prompt, so every descriptive column
// carries a json tag.
type Student struct {
	RollNumber        string  `db:"roll_number" json:"roll_number"`
	FullName          string  `db:"full_name" json:"full_name"`
	Gender            string  `db:"gender" json:"gender"`
	ClassAssigned     string  `db:"class_assigned" json:"class_assigned"`
	MentorID          int64   `db:"mentor_id" json:"mentor_id"`
	AttendancePercent float64 `db:"attendance_percent" json:"attendance_percent"`
	AverageGrade      float64 `db:"average_grade" json:"average_grade"`
	Phone             string  `db:"phone" json:"phone"`
	Address           string  `db:"address" json:"address"`
}
