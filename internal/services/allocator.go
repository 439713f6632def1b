package services

import "github.com/localnerve/enxovaldb/internal/models"

// FirstID is the id given to the first record of an empty collection.
const FirstID int64 = 1

// NextID returns max(id)+1 over records, or FirstID when there are none.
// Ids of removed records are not handed out again unless they were the maximum.
func NextID[T models.Entity[T]](records []T) int64 {
	if len(records) == 0 {
		return FirstID
	}

	maxID := records[0].GetID()
	for _, r := range records[1:] {
		if id := r.GetID(); id > maxID {
			maxID = id
		}
	}
	if maxID < FirstID {
		return FirstID
	}
	return maxID + 1
}
