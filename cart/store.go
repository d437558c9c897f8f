// Package cart maintains the authoritative in-memory shopping cart for a
// signed-in user and mirrors every mutation to durable per-user storage.
// Persistence is best-effort: write failures are logged and swallowed, the
// in-memory state stands for the rest of the session.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"farmsoc-api/models"
)

// KV is the durable per-user key-value storage the store writes through to.
// Get returns (nil, nil) when the key does not exist.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Line is one (product snapshot, quantity) pair. The product is captured at
// add time; later catalog changes do not propagate into existing lines.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

const snapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Lines   []Line `json:"lines"`
}

// Store holds the cart for a single user session. Lines are ordered and
// unique by product id; quantities never drop below 1.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	closed bool

	kv      KV
	key     string
	pending chan []byte
	wg      sync.WaitGroup
}

func storageKey(userID string) string {
	return "cart:" + userID
}

// Open loads the user's persisted cart (missing or unreadable snapshots start
// empty) and starts the background write-through flusher. Callers must
// Close the store when the session ends.
func Open(ctx context.Context, kv KV, userID string) *Store {
	s := &Store{
		kv:      kv,
		key:     storageKey(userID),
		pending: make(chan []byte, 1),
	}
	s.load(ctx)

	s.wg.Add(1)
	go s.flushLoop()

	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Printf("cart: loading %s failed, starting empty: %v", s.key, err)
		return
	}
	if data == nil {
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("cart: unreadable snapshot at %s, starting empty: %v", s.key, err)
		return
	}
	if snap.Version != snapshotVersion {
		log.Printf("cart: unsupported snapshot version %d at %s, starting empty", snap.Version, s.key)
		return
	}

	// Re-establish the invariants on whatever was stored: one line per
	// product, quantity at least 1.
	for _, line := range snap.Lines {
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		if i := s.index(line.Product.ID); i >= 0 {
			s.lines[i].Quantity += line.Quantity
			continue
		}
		s.lines = append(s.lines, line)
	}
}

// index returns the position of the line for productID, or -1.
// Callers must hold s.mu (or be in single-threaded setup, as in load).
func (s *Store) index(productID string) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add merges qty into the existing line for the product or appends a new
// line. Requested quantity is not checked against the product's available
// stock; checkout is responsible for rejecting oversells.
func (s *Store) Add(product models.Product, qty int) {
	if qty < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(product.ID); i >= 0 {
		s.lines[i].Quantity += qty
	} else {
		s.lines = append(s.lines, Line{Product: product, Quantity: qty})
	}
	s.persistLocked()
}

// Remove deletes the line for productID. Removing an absent product is a
// silent no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(productID)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persistLocked()
}

// SetQuantity sets the quantity for productID, clamping to a minimum of 1.
// Decrement buttons may request 0 or less; the line stays at 1 and is never
// removed implicitly. Unknown product ids are a no-op.
func (s *Store) SetQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(productID)
	if i < 0 {
		return
	}
	if qty < 1 {
		qty = 1
	}
	s.lines[i].Quantity = qty
	s.persistLocked()
}

// Clear empties the cart. Used after checkout completes.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistLocked()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Line, len(s.lines))
	copy(items, s.lines)
	return items
}

// Total is the sum of price x quantity over all lines. It is recomputed on
// every call and never cached, so it cannot drift from the line contents.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// persistLocked queues a full snapshot for the flusher, replacing any not
// yet written snapshot so the newest state always wins. Callers hold s.mu.
func (s *Store) persistLocked() {
	if s.closed {
		return
	}

	payload, err := json.Marshal(snapshot{Version: snapshotVersion, Lines: s.lines})
	if err != nil {
		log.Printf("cart: failed to encode snapshot for %s: %v", s.key, err)
		return
	}

	for {
		select {
		case s.pending <- payload:
			return
		default:
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

func (s *Store) flushLoop() {
	defer s.wg.Done()
	for payload := range s.pending {
		if err := s.kv.Set(context.Background(), s.key, payload); err != nil {
			log.Printf("cart: failed to persist %s: %v", s.key, err)
		}
	}
}

// Close stops the write-through after draining any queued snapshot. The
// in-memory state is dropped by the caller; storage keeps the last written
// snapshot for the next session. Close is idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.pending)
	s.wg.Wait()
}
