package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LoadTemplates parses the embedded view templates for a role engine.
func LoadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// complaintRow is one rendered listing row with the timestamp already
// formatted for display.
type complaintRow struct {
	ID          uint
	RegNo       string
	Email       string
	Hostel      string
	FloorNo     string
	RoomNo      string
	PhoneNo     string
	Description string
	CreatedAt   string
	Status      string
	Solved      bool
}

// historyView is the data fed to the complaints_history template. Message is
// only set on the empty-state path; both paths share the template.
type historyView struct {
	Complaints []complaintRow
	Message    string
	CanDelete  bool
}
