// Package selection tracks the single product currently chosen for ordering.
//
// The storefront UI permits exactly one order modal at a time, so there is
// logically one selection. Nothing structural enforces that, which is why the
// cell takes a mutex instead of relying on callers.
package selection

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/veloura/storefront/internal/catalog"
	"github.com/veloura/storefront/internal/model"
)

// ErrNoSelection is returned when an operation needs a selected product and
// the selection is empty.
var ErrNoSelection = errors.New("no product selected")

// FlowState is the order flow position: Idle until a product is picked,
// Selected while the order form is open, Composed once validation passed,
// Dispatched once a channel action has been built.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSelected   FlowState = "selected"
	FlowComposed   FlowState = "composed"
	FlowDispatched FlowState = "dispatched"
)

// Snapshot is a point-in-time copy of the selection, safe to hand to callers.
type Snapshot struct {
	Product  model.Product
	Quantity int
	Selected bool
}

// Total returns product price times quantity. It is computed on every call so
// it can never disagree with the latest quantity.
func (s Snapshot) Total() int {
	if !s.Selected {
		return 0
	}
	return s.Product.Price * s.Quantity
}

// State is the owned mutable selection cell.
type State struct {
	mu       sync.Mutex
	product  model.Product
	quantity int
	selected bool
	flow     FlowState
}

// New returns an empty selection in the idle flow state.
func New() *State {
	return &State{flow: FlowIdle}
}

// Select picks the product with the given ID from the catalog and resets the
// quantity to 1. When the ID does not exist the selection is left untouched
// and the error is returned; it never falls back to another product.
func (s *State) Select(store *catalog.Store, id int) (Snapshot, error) {
	product, err := store.FindByID(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = product
	s.quantity = 1
	s.selected = true
	s.flow = FlowSelected
	return s.snapshotLocked(), nil
}

// SetQuantity applies a customer-entered quantity to the current selection.
// Anything that is not a positive integer (non-numeric, zero, negative,
// fractional) clamps to 1; clamping is policy, not an error.
func (s *State) SetQuantity(raw string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.selected {
		return Snapshot{}, ErrNoSelection
	}
	s.quantity = CoerceQuantity(raw)
	return s.snapshotLocked(), nil
}

// Clear empties the selection and returns the flow to idle. It is called when
// the order modal closes and after an order has been dispatched.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = model.Product{}
	s.quantity = 0
	s.selected = false
	s.flow = FlowIdle
}

// Snapshot returns a copy of the current selection.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Flow returns the current flow state.
func (s *State) Flow() FlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

// MarkComposed records a successful validate+compose. A failed validation
// never calls this, so the flow stays at selected for re-prompting.
func (s *State) MarkComposed() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != FlowSelected {
		return ErrNoSelection
	}
	s.flow = FlowComposed
	return nil
}

// MarkDispatched records that a channel action has been built for the
// composed order.
func (s *State) MarkDispatched() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != FlowComposed {
		return ErrNoSelection
	}
	s.flow = FlowDispatched
	return nil
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Product:  s.product,
		Quantity: s.quantity,
		Selected: s.selected,
	}
}

// CoerceQuantity parses a raw quantity value, clamping everything that is not
// a positive integer to 1.
func CoerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
