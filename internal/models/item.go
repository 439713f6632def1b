package models

// CategoryRef is the category snapshot embedded in an item at write time.
// It is a copy, not a reference: renaming a category does not touch existing items.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Donation is one entry of an item's append-only donation log.
type Donation struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Extra    Extra  `json:"-" swaggerignore:"true"`
}

// Item is something the missionary needs, with how many are still missing.
type Item struct {
	ID             int64       `json:"id"`
	Category       CategoryRef `json:"category"`
	RemainQuantity int         `json:"remainQuantity" validate:"gte=0"`
	TotalQuantity  int         `json:"totalQuantity" validate:"gte=0"`
	Name           string      `json:"name"`
	Donations      []Donation  `json:"donations" validate:"dive"`
	Audit
	Extra Extra `json:"-" swaggerignore:"true"`
}

// GetID returns the item id.
func (i Item) GetID() int64 { return i.ID }

// WithID returns a copy of i carrying id.
func (i Item) WithID(id int64) Item {
	i.ID = id
	return i
}

// Normalize replaces nil slices so the stored document keeps `[]` instead of `null`.
func (i Item) Normalize() Item {
	if i.Donations == nil {
		i.Donations = []Donation{}
	}
	return i
}

type plainDonation Donation

// UnmarshalJSON keeps undeclared members in Extra.
func (d *Donation) UnmarshalJSON(data []byte) error {
	var known plainDonation
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*d = Donation(known)
	d.Extra = extra
	return nil
}

// MarshalJSON writes Extra back next to the declared members.
func (d Donation) MarshalJSON() ([]byte, error) {
	return encodeRecord(plainDonation(d), d.Extra)
}

type plainItem Item

// UnmarshalJSON keeps undeclared members in Extra.
func (i *Item) UnmarshalJSON(data []byte) error {
	var known plainItem
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*i = Item(known)
	i.Extra = extra
	return nil
}

// MarshalJSON writes Extra back next to the declared members.
func (i Item) MarshalJSON() ([]byte, error) {
	return encodeRecord(plainItem(i), i.Extra)
}
