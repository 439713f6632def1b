// donations.go
//
// A Go data service for the Enxoval Missionário donation registry
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of enxovaldb.
// enxovaldb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// enxovaldb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with enxovaldb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
)

// DonationUpdate records one donation against one item.
type DonationUpdate struct {
	ItemID   types.FlexInt64 `json:"itemId"`
	Donation models.Donation `json:"donationsObject"`
}

// DonationResult reports what a batch did.
type DonationResult struct {
	Applied        int     `json:"applied"`
	Skipped        int     `json:"skipped"`
	SkippedItemIDs []int64 `json:"skippedItemIds"`
}

// ApplyDonations applies updates in order and returns the new item list.
//
// For a matching item, remainQuantity drops by the donated quantity but never below
// zero, and the donation is appended to the log even when the quantity was clamped.
// Updates naming an unknown item are skipped and counted. Several updates against the
// same item compound. The input slice and its items are not modified.
func ApplyDonations(items []models.Item, updates []DonationUpdate) ([]models.Item, DonationResult) {
	out := make([]models.Item, len(items))
	copy(out, items)

	index := make(map[int64]int, len(out))
	for i := len(out) - 1; i >= 0; i-- {
		// first record wins when ids collide
		index[out[i].ID] = i
	}

	result := DonationResult{SkippedItemIDs: []int64{}}
	touched := make(map[int]bool)

	for _, update := range updates {
		pos, ok := index[update.ItemID.Int64()]
		if !ok {
			result.Skipped++
			result.SkippedItemIDs = append(result.SkippedItemIDs, update.ItemID.Int64())
			continue
		}

		item := out[pos]
		if !touched[pos] {
			// copy the log once so the caller's slice is never shared
			item.Donations = append(make([]models.Donation, 0, len(item.Donations)+1), item.Donations...)
			touched[pos] = true
		}

		remain := item.RemainQuantity - update.Donation.Quantity
		if remain < 0 {
			remain = 0
		}
		item.RemainQuantity = remain
		item.Donations = append(item.Donations, update.Donation)

		out[pos] = item
		result.Applied++
	}

	return out, result
}
