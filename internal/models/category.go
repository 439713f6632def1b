package models

// Category groups items, e.g. "Bedding" or "Clothing".
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Audit
	Extra Extra `json:"-" swaggerignore:"true"`
}

// GetID returns the category id.
func (c Category) GetID() int64 { return c.ID }

// WithID returns a copy of c carrying id.
func (c Category) WithID(id int64) Category {
	c.ID = id
	return c
}

type plainCategory Category

// UnmarshalJSON keeps undeclared members in Extra.
func (c *Category) UnmarshalJSON(data []byte) error {
	var known plainCategory
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*c = Category(known)
	c.Extra = extra
	return nil
}

// MarshalJSON writes Extra back next to the declared members.
func (c Category) MarshalJSON() ([]byte, error) {
	return encodeRecord(plainCategory(c), c.Extra)
}
