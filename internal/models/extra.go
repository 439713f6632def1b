package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/localnerve/enxovaldb/internal/types"
)

// Extra holds the members of a stored record that its struct does not declare.
// They are written back unchanged so a rewrite of the document keeps them.
type Extra map[string]json.RawMessage

// decodeRecord unmarshals data into known (a pointer to a method-less twin of the record
// type) and returns the members known did not claim.
// A string "id" is accepted the same way path ids are.
func decodeRecord(data []byte, known any) (Extra, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	if raw, ok := members["id"]; ok && len(raw) > 0 && raw[0] == '"' {
		var id types.FlexInt64
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, fmt.Errorf("id: %w", err)
		}
		members["id"] = json.RawMessage(fmt.Sprint(id.Int64()))
		normalized, err := json.Marshal(members)
		if err != nil {
			return nil, err
		}
		data = normalized
	}

	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	declared, err := memberNames(known)
	if err != nil {
		return nil, err
	}

	var extra Extra
	for name, raw := range members {
		if declared[strings.ToLower(name)] {
			continue
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[name] = raw
	}
	return extra, nil
}

// encodeRecord marshals known and adds the extra members it does not already write.
func encodeRecord(known any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for name, raw := range extra {
		if _, ok := members[name]; !ok {
			members[name] = raw
		}
	}

	return json.Marshal(members)
}

// memberNames lists the lowercased JSON member names v writes. encoding/json matches
// member names without regard to case, so "Name" is not an extra next to "name".
func memberNames(v any) (map[string]bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(members))
	for name := range members {
		names[strings.ToLower(name)] = true
	}
	return names, nil
}
