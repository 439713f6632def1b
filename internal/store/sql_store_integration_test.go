package store

import (
	"context"
	"sync"
	"testing"

	"github.com/localnerve/enxovaldb/internal/database"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSQLStoreSharedDatabase runs two stores, as two processes would, against one
// real database. Their in-process locks are independent, so only the row lock and
// the version guard keep their writes from being lost.
func TestSQLStoreSharedDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	for _, dbType := range []string{"postgres", "mariadb"} {
		t.Run(dbType, func(t *testing.T) {
			ctx := context.Background()

			dc, err := testutil.StartDatabase(ctx, t, dbType)
			require.NoError(t, err)
			t.Cleanup(func() { dc.Terminate(t) })

			open := func() *SQLStore {
				db, err := database.Connect(dc.Config, logger.Discard())
				require.NoError(t, err)
				require.NoError(t, database.AutoMigrate(db))
				s := NewSQLStore(db)
				t.Cleanup(func() { s.Close() })
				return s
			}
			first, second := open(), open()
			require.NoError(t, Seed(ctx, first))

			type row struct {
				ID int `json:"id"`
			}

			const perStore = 20
			var wg sync.WaitGroup
			var mu sync.Mutex
			var failures []error
			for _, s := range []*SQLStore{first, second} {
				items := NewCollection[row](s, Items)
				for i := 0; i < perStore; i++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						err := items.Mutate(ctx, func(records []row) ([]row, error) {
							return append(records, row{ID: len(records) + 1}), nil
						})
						if err != nil {
							mu.Lock()
							failures = append(failures, err)
							mu.Unlock()
						}
					}()
				}
			}
			wg.Wait()

			records, err := NewCollection[row](first, Items).All(ctx)
			require.NoError(t, err)
			// Every write either landed or reported an error; none vanished.
			assert.Equal(t, 2*perStore, len(records)+len(failures))
		})
	}
}
