package models

import "strings"

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleTechnician UserRole = "technician"
)

// Student accounts are provisioned externally; this service only reads them
// during login.
type Student struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RegNo    string `json:"regno" gorm:"column:regno;uniqueIndex;not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
}

func (Student) TableName() string {
	return "students"
}

type Technician struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RegNo    string `json:"regno" gorm:"column:regno;not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
}

func (Technician) TableName() string {
	return "technician"
}

// NormalizeRegNo applies the canonical form used for lookups and ownership
// checks: registration numbers are matched case-insensitively everywhere.
func NormalizeRegNo(regno string) string {
	return strings.ToUpper(strings.TrimSpace(regno))
}
