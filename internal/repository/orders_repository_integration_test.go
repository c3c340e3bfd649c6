//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/catering-service/internal/domain/model"
)

func TestOrderRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewOrderRepository(db)

	newOrder := func(i int, session string) *model.Order {
		return &model.Order{
			ID:        fmt.Sprintf("order-%03d", i),
			SessionID: session,
			Lines: []model.CartLine{
				{
					ID:       fmt.Sprintf("line-%d", i),
					ItemID:   "antipasti-tray",
					Name:     model.LocalizedText{Primary: "מגש אנטיפסטי"},
					Category: model.CategoryColdPlatters,
					Unit:     model.UnitTray,
					Price:    180,
					Quantity: 3,
				},
			},
			Total:     540,
			Customer:  model.CustomerDeliveryState{Name: "Dana", Phone: "0501234567"},
			Status:    model.OrderStatusSubmitted,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
	}

	t.Run("find absent order returns nil", func(t *testing.T) {
		order, err := repo.FindByID(ctx, "order-404")
		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("create and find", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			session := "sess-a"
			if i > 3 {
				session = "sess-b"
			}
			require.NoError(t, repo.Create(ctx, newOrder(i, session)))
		}

		found, err := repo.FindByID(ctx, "order-001")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "sess-a", found.SessionID)
		assert.Equal(t, 540.0, found.Total)
		assert.Equal(t, model.OrderStatusSubmitted, found.Status)
		require.Len(t, found.Lines, 1)
		assert.Equal(t, "antipasti-tray", found.Lines[0].ItemID)
	})

	t.Run("list recent sorts newest first", func(t *testing.T) {
		orders, err := repo.ListRecent(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, orders, 5)
		assert.Equal(t, "order-005", orders[0].ID)
		assert.Equal(t, "order-001", orders[4].ID)
	})

	t.Run("list recent honors limit and skip", func(t *testing.T) {
		page, err := repo.ListRecent(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "order-004", page[0].ID)
		assert.Equal(t, "order-003", page[1].ID)
	})

	t.Run("list by session", func(t *testing.T) {
		orders, err := repo.ListBySession(ctx, "sess-b")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		for _, order := range orders {
			assert.Equal(t, "sess-b", order.SessionID)
		}
	})
}
