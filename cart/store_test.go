package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmsoc-api/models"
)

// fakeKV is an in-memory KV for tests. failSet makes every write fail.
type fakeKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("storage unavailable")
	}
	f.data[key] = value
	return nil
}

func testProduct(id, name, price string) models.Product {
	return models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Unit:  "kg",
	}
}

func TestAddMergesQuantitiesIntoOneLine(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	tomatoes := testProduct("p1", "Organic Tomatoes", "2.99")
	s.Add(tomatoes, 1)
	s.Add(tomatoes, 2)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.Add(testProduct("p2", "Alphonso Mangoes", "8.99"), 1)
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.Add(testProduct("p3", "Fresh Carrots", "1.49"), 1)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, "p2", items[1].Product.ID)
	assert.Equal(t, "p3", items[2].Product.ID)
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 0)
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), -3)

	assert.Empty(t, s.Items())
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)
	s.Remove("p2")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveDeletesLine(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.Add(testProduct("p2", "Alphonso Mangoes", "8.99"), 1)
	s.Remove("p1")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 3)

	s.SetQuantity("p1", 0)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.SetQuantity("p1", -5)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.SetQuantity("p1", 7)
	assert.Equal(t, 7, s.Items()[0].Quantity)
}

func TestClampedUpdateLeavesTotalUnchanged(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	before := s.Total()

	s.SetQuantity("p1", 0)

	assert.Equal(t, 1, s.Items()[0].Quantity)
	assert.True(t, s.Total().Equal(before))
}

func TestSetQuantityAbsentProductIsNoOp(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)
	s.SetQuantity("p9", 5)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestTotalSumsPriceTimesQuantity(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 3)
	assert.Equal(t, "8.97", s.Total().StringFixed(2))

	s.Add(testProduct("p3", "Fresh Carrots", "1.49"), 2)
	assert.Equal(t, "11.95", s.Total().StringFixed(2))
}

func TestTotalTracksRemovals(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.Add(testProduct("p5", "Free-Range Eggs", "2.50"), 2)
	s.Remove("p1")

	assert.Equal(t, "5.00", s.Total().StringFixed(2))
}

func TestTotalOfEmptyCartIsZero(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	assert.True(t, s.Total().IsZero())
}

func TestClearEmptiesCart(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)
	s.Add(testProduct("p2", "Alphonso Mangoes", "8.99"), 1)
	s.Clear()

	assert.Empty(t, s.Items())
	assert.True(t, s.Total().IsZero())
}

func TestCartSurvivesReopen(t *testing.T) {
	kv := newFakeKV()

	s := Open(context.Background(), kv, "u1")
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 3)
	s.Add(testProduct("p2", "Alphonso Mangoes", "8.99"), 1)
	s.Close()

	reopened := Open(context.Background(), kv, "u1")
	defer reopened.Close()

	items := reopened.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "p2", items[1].Product.ID)
	assert.Equal(t, "17.96", reopened.Total().StringFixed(2))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	defer s.Close()

	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 2, s.Items()[0].Quantity)
}

func TestLoadRepairsStoredSnapshot(t *testing.T) {
	kv := newFakeKV()
	stored, err := json.Marshal(snapshot{
		Version: snapshotVersion,
		Lines: []Line{
			{Product: testProduct("p1", "Organic Tomatoes", "2.99"), Quantity: 2},
			{Product: testProduct("p1", "Organic Tomatoes", "2.99"), Quantity: 1},
			{Product: testProduct("p2", "Alphonso Mangoes", "8.99"), Quantity: 0},
		},
	})
	require.NoError(t, err)
	kv.data[storageKey("u1")] = stored

	s := Open(context.Background(), kv, "u1")
	defer s.Close()

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestLoadStartsEmptyOnUnsupportedVersion(t *testing.T) {
	kv := newFakeKV()
	stored, err := json.Marshal(snapshot{
		Version: snapshotVersion + 1,
		Lines:   []Line{{Product: testProduct("p1", "Organic Tomatoes", "2.99"), Quantity: 2}},
	})
	require.NoError(t, err)
	kv.data[storageKey("u1")] = stored

	s := Open(context.Background(), kv, "u1")
	defer s.Close()

	assert.Empty(t, s.Items())
}

func TestLoadStartsEmptyOnCorruptSnapshot(t *testing.T) {
	kv := newFakeKV()
	kv.data[storageKey("u1")] = []byte("{not json")

	s := Open(context.Background(), kv, "u1")
	defer s.Close()

	assert.Empty(t, s.Items())
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	kv := newFakeKV()
	kv.failSet = true

	s := Open(context.Background(), kv, "u1")
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 3)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "8.97", s.Total().StringFixed(2))

	s.Close()
	assert.Empty(t, kv.data)
}

func TestCloseFlushesLastSnapshot(t *testing.T) {
	kv := newFakeKV()

	s := Open(context.Background(), kv, "u1")
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.SetQuantity("p1", 4)
	s.Close()

	var snap snapshot
	require.NoError(t, json.Unmarshal(kv.data[storageKey("u1")], &snap))
	assert.Equal(t, snapshotVersion, snap.Version)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 4, snap.Lines[0].Quantity)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := Open(context.Background(), newFakeKV(), "u1")
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	s.Close()
	s.Close()
}
