package person

import "strings"

// Kind discriminates the two stored person categories. Each kind is
// persisted in its own relational table; there is no shared table or
// polymorphic row layout.
type Kind string

const (
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

// Table returns the relational table holding records of this kind.
func (k Kind) Table() string {
	if k == KindDoctor {
		return "doctors"
	}
	return "patients"
}

// RoleLabel is the human-facing role name used in session and login
// responses.
func (k Kind) RoleLabel() string {
	if k == KindDoctor {
		return "Doctor"
	}
	return "Patient"
}

// Person is a single record from either category, tagged with its Kind.
// A nil ID means the record has not been persisted yet. Username and
// Password are optional: a person without credentials exists in the
// registry but cannot log in.
type Person struct {
	ID         *int64  `json:"id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	NationalID string  `json:"national_id"`
	Username   *string `json:"username,omitempty"`
	Password   *string `json:"-"`
	Kind       Kind    `json:"kind"`
}

// FullName joins the given and family names for display.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Code is the public lookup code for a person. It is the national
// identity number; doctors are addressable by it in the API.
func (p *Person) Code() string {
	return p.NationalID
}

// Saved reports whether the record has been persisted.
func (p *Person) Saved() bool {
	return p.ID != nil
}
