package validator

// LoginRequest is the credential form posted to /Login. The field is named
// username on the wire but carries the registration number.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// ComplaintCreateRequest is the submission form. The fields are free-form by
// contract; nothing beyond binding is enforced on them.
type ComplaintCreateRequest struct {
	Email       string `form:"email" json:"email"`
	Hostel      string `form:"hostel" json:"hostel"`
	FloorNo     string `form:"floorno" json:"floorno"`
	RoomNo      string `form:"roomno" json:"roomno"`
	PhoneNo     string `form:"phoneno" json:"phoneno"`
	Description string `form:"description" json:"description"`
}
