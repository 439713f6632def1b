package models

// PersonalInfo is the single profile record of the missionary being supported.
type PersonalInfo struct {
	Name              string `json:"name"`
	MissionaryName    string `json:"missionaryName"`
	Mission           string `json:"mission"`
	Start             string `json:"start"`
	End               string `json:"end"`
	MissionOfficeLink string `json:"missionOfficeLink"`
	Testimony         string `json:"testimony"`
	Extra             Extra  `json:"-" swaggerignore:"true"`
}

type plainPersonalInfo PersonalInfo

// UnmarshalJSON keeps undeclared members in Extra.
func (p *PersonalInfo) UnmarshalJSON(data []byte) error {
	var known plainPersonalInfo
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*p = PersonalInfo(known)
	p.Extra = extra
	return nil
}

// MarshalJSON writes Extra back next to the declared members.
func (p PersonalInfo) MarshalJSON() ([]byte, error) {
	return encodeRecord(plainPersonalInfo(p), p.Extra)
}
