package models

// User is a registry operator. Password and roles are stored opaquely and never checked.
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
	Audit
	Extra Extra `json:"-" swaggerignore:"true"`
}

// GetID returns the user id.
func (u User) GetID() int64 { return u.ID }

// WithID returns a copy of u carrying id.
func (u User) WithID(id int64) User {
	u.ID = id
	return u
}

// Normalize replaces nil slices so the stored document keeps `[]` instead of `null`.
func (u User) Normalize() User {
	if u.Roles == nil {
		u.Roles = []string{}
	}
	return u
}

type plainUser User

// UnmarshalJSON keeps undeclared members in Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	var known plainUser
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*u = User(known)
	u.Extra = extra
	return nil
}

// MarshalJSON writes Extra back next to the declared members.
func (u User) MarshalJSON() ([]byte, error) {
	return encodeRecord(plainUser(u), u.Extra)
}
