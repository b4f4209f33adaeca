package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-storefront/internal/cart"
	"go-storefront/internal/kv"
	mock "go-storefront/internal/mock/kv"
	"go-storefront/internal/product"
	"go-storefront/internal/toast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) (*cart.Store, *toast.Channel) {
	t.Helper()
	slots, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	toasts := toast.NewChannel(time.Minute)
	return cart.NewStore(slots, toasts, nil), toasts
}

func laptop() product.Product {
	return product.Product{ID: 1, Name: "Laptop Gamer", Price: 10, Stock: 2}
}

func TestStore_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps_to_stock", func(t *testing.T) {
		store, _ := newTestStore(t)

		store.AddItem(ctx, laptop(), 5)

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 20.00, store.Total())
		assert.Equal(t, 2, store.Count())
	})

	t.Run("merges_instead_of_duplicating", func(t *testing.T) {
		store, _ := newTestStore(t)
		p := product.Product{ID: 2, Name: "Mouse", Price: 5, Stock: 10}

		store.AddItem(ctx, p, 3)
		store.AddItem(ctx, p, 4)

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Quantity)
	})

	t.Run("merge_is_stock_clamped", func(t *testing.T) {
		store, _ := newTestStore(t)

		store.AddItem(ctx, laptop(), 1)
		store.AddItem(ctx, laptop(), 9)

		assert.Equal(t, 2, store.Lines()[0].Quantity)
	})

	t.Run("zero_stock_rejected_silently", func(t *testing.T) {
		store, toasts := newTestStore(t)

		store.AddItem(ctx, product.Product{ID: 3, Name: "Sold out", Price: 99, Stock: 0}, 1)

		assert.Empty(t, store.Lines())
		assert.Empty(t, toasts.List())
	})

	t.Run("emits_success_toast_naming_product", func(t *testing.T) {
		store, toasts := newTestStore(t)

		store.AddItem(ctx, laptop(), 1)

		items := toasts.List()
		require.Len(t, items, 1)
		assert.Equal(t, toast.KindSuccess, items[0].Kind)
		assert.Contains(t, items[0].Message, "Laptop Gamer")
	})

	t.Run("keeps_insertion_order", func(t *testing.T) {
		store, _ := newTestStore(t)

		store.AddItem(ctx, product.Product{ID: 10, Name: "a", Price: 1, Stock: 5}, 1)
		store.AddItem(ctx, product.Product{ID: 11, Name: "b", Price: 1, Stock: 5}, 1)
		store.AddItem(ctx, product.Product{ID: 10, Name: "a", Price: 1, Stock: 5}, 1)

		lines := store.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, int64(10), lines[0].ProductID)
		assert.Equal(t, int64(11), lines[1].ProductID)
	})
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps_to_stock_range", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, laptop(), 1)

		store.UpdateQuantity(ctx, 1, 99)

		assert.Equal(t, 2, store.Lines()[0].Quantity)
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, laptop(), 2)

		store.UpdateQuantity(ctx, 1, 0)

		assert.Empty(t, store.Lines())
		assert.Equal(t, 0, store.Count())
	})

	t.Run("negative_treated_as_zero", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, laptop(), 2)

		store.UpdateQuantity(ctx, 1, -3)

		assert.Empty(t, store.Lines())
	})

	t.Run("unknown_product_is_noop", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, laptop(), 1)

		store.UpdateQuantity(ctx, 999, 5)

		assert.Equal(t, 1, store.Count())
	})
}

func TestStore_Totals(t *testing.T) {
	ctx := context.Background()

	t.Run("total_rounds_to_two_decimals", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, product.Product{ID: 1, Name: "a", Price: 19.99, Stock: 10}, 3)
		store.AddItem(ctx, product.Product{ID: 2, Name: "b", Price: 5.00, Stock: 10}, 2)

		assert.Equal(t, 69.97, store.Total())
		assert.Equal(t, 5, store.Count())
	})

	t.Run("clear_resets_everything", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddItem(ctx, laptop(), 2)

		store.Clear(ctx)

		assert.Equal(t, 0, store.Count())
		assert.Equal(t, 0.00, store.Total())
	})
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("restore_roundtrip", func(t *testing.T) {
		dir := t.TempDir()
		slots, err := kv.NewFileStore(dir)
		require.NoError(t, err)
		toasts := toast.NewChannel(time.Minute)

		first := cart.NewStore(slots, toasts, nil)
		first.AddItem(ctx, laptop(), 2)

		second := cart.NewStore(slots, toasts, nil)
		second.Restore(ctx)

		assert.Equal(t, 2, second.Count())
		assert.Equal(t, 20.00, second.Total())
	})

	t.Run("corrupt_slot_means_empty_cart", func(t *testing.T) {
		slots, err := kv.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, slots.Set(ctx, kv.KeyCart, []byte("{not json")))

		store := cart.NewStore(slots, toast.NewChannel(time.Minute), nil)
		store.Restore(ctx)

		assert.Empty(t, store.Lines())
	})

	t.Run("every_mutation_persists", func(t *testing.T) {
		slots, err := kv.NewFileStore(t.TempDir())
		require.NoError(t, err)
		store := cart.NewStore(slots, toast.NewChannel(time.Minute), nil)

		store.AddItem(ctx, laptop(), 1)
		store.UpdateQuantity(ctx, 1, 2)

		b, err := slots.Get(ctx, kv.KeyCart)
		require.NoError(t, err)
		var state struct {
			Lines []cart.Line `json:"lines"`
		}
		require.NoError(t, json.Unmarshal(b, &state))
		require.Len(t, state.Lines, 1)
		assert.Equal(t, 2, state.Lines[0].Quantity)
	})

	t.Run("write_failure_keeps_memory_and_raises_error_toast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		slots := mock.NewMockStore(ctrl)
		slots.EXPECT().
			Set(gomock.Any(), kv.KeyCart, gomock.Any()).
			Return(errors.New("quota exceeded"))

		toasts := toast.NewChannel(time.Minute)
		store := cart.NewStore(slots, toasts, nil)

		store.AddItem(ctx, laptop(), 1)

		// the mutation survived in memory
		assert.Equal(t, 1, store.Count())

		// and the failure was surfaced, alongside the add-to-cart toast
		items := toasts.List()
		require.Len(t, items, 2)
		assert.Equal(t, toast.KindError, items[0].Kind)
	})
}
