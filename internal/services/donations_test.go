package services

import (
	"testing"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donation(itemID int64, name string, quantity int) DonationUpdate {
	return DonationUpdate{ItemID: types.FlexInt64(itemID), Donation: models.Donation{Name: name, Contact: "123", Quantity: quantity}}
}

func TestApplyDonationsCompoundsOnOneItem(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Blanket", RemainQuantity: 10, TotalQuantity: 10, Donations: []models.Donation{}}}

	out, result := ApplyDonations(items, []DonationUpdate{
		donation(1, "Ana", 4),
		donation(1, "Bia", 3),
	})

	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].RemainQuantity)
	assert.Len(t, out[0].Donations, 2)
	assert.Equal(t, "Ana", out[0].Donations[0].Name)
	assert.Equal(t, "Bia", out[0].Donations[1].Name)
	assert.Equal(t, DonationResult{Applied: 2, Skipped: 0, SkippedItemIDs: []int64{}}, result)
}

func TestApplyDonationsClampsAtZero(t *testing.T) {
	items := []models.Item{{ID: 2, RemainQuantity: 2}}

	out, _ := ApplyDonations(items, []DonationUpdate{donation(2, "Caio", 5)})

	assert.Equal(t, 0, out[0].RemainQuantity)
	require.Len(t, out[0].Donations, 1)
	assert.Equal(t, 5, out[0].Donations[0].Quantity, "the log keeps the requested quantity")
}

func TestApplyDonationsSkipsUnknownItems(t *testing.T) {
	items := []models.Item{{ID: 1, RemainQuantity: 5}}

	out, result := ApplyDonations(items, []DonationUpdate{
		donation(7, "Ana", 1),
		donation(1, "Ana", 1),
		donation(8, "Ana", 1),
	})

	assert.Equal(t, 4, out[0].RemainQuantity)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []int64{7, 8}, result.SkippedItemIDs)
}

func TestApplyDonationsDoesNotModifyInput(t *testing.T) {
	log := make([]models.Donation, 0, 4)
	items := []models.Item{{ID: 1, RemainQuantity: 5, Donations: log}}

	out, _ := ApplyDonations(items, []DonationUpdate{donation(1, "Ana", 2)})

	assert.Equal(t, 5, items[0].RemainQuantity)
	assert.Empty(t, items[0].Donations)
	assert.Equal(t, models.Donation{}, log[:1][0], "spare capacity of the input log is untouched")
	assert.Len(t, out[0].Donations, 1)
}

func TestApplyDonationsEmptyBatch(t *testing.T) {
	items := []models.Item{{ID: 1, RemainQuantity: 5}}

	out, result := ApplyDonations(items, nil)
	assert.Equal(t, items, out)
	assert.Zero(t, result.Applied)
	assert.Zero(t, result.Skipped)
}
