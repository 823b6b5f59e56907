package models

import "time"

type ComplaintStatus string

const (
	StatusUnsolved ComplaintStatus = "Unsolved"
	StatusSolved   ComplaintStatus = "Solved"
)

// Complaint is a hostel maintenance request. Status moves one way,
// Unsolved -> Solved; there is no reopening.
type Complaint struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	RegNo       string          `json:"regno" gorm:"column:regno;not null;size:50;index"`
	Email       string          `json:"email" gorm:"size:255"`
	Hostel      string          `json:"hostel" gorm:"size:100"`
	FloorNo     string          `json:"floorno" gorm:"column:floorno;size:20"`
	RoomNo      string          `json:"roomno" gorm:"column:roomno;size:20"`
	PhoneNo     string          `json:"phoneno" gorm:"column:phoneno;size:20"`
	Description string          `json:"description" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	Status      ComplaintStatus `json:"status" gorm:"size:20;default:Unsolved"`
}

func (Complaint) TableName() string {
	return "complaintdata"
}

// FormatCreatedAt renders the creation timestamp the way the listing views
// display it, e.g. "January 2, 2006 at 3:04:05 PM".
func (c *Complaint) FormatCreatedAt() string {
	return c.CreatedAt.Format("January 2, 2006 at 3:04:05 PM")
}

func (c *Complaint) IsSolved() bool {
	return c.Status == StatusSolved
}
