package service

import (
	"log/slog"
	"time"

	"github.com/veloura/storefront/internal/catalog"
	"github.com/veloura/storefront/internal/dispatch"
	"github.com/veloura/storefront/internal/metrics"
	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/order"
	"github.com/veloura/storefront/internal/selection"
)

// StorefrontService threads the catalog, selection state, order composer and
// delivery dispatcher together. It is the command interface the HTTP layer
// calls; every operation returns a typed result or error instead of mutating
// shared state behind the caller's back.
type StorefrontService struct {
	store      *catalog.Store
	sel        *selection.State
	dispatcher *dispatch.Dispatcher
	now        func() time.Time
}

// NewStorefrontService creates a StorefrontService. A nil clock defaults to
// time.Now.
func NewStorefrontService(store *catalog.Store, dispatcher *dispatch.Dispatcher, now func() time.Time) *StorefrontService {
	if now == nil {
		now = time.Now
	}
	return &StorefrontService{
		store:      store,
		sel:        selection.New(),
		dispatcher: dispatcher,
		now:        now,
	}
}

// Search derives the catalog view for a search term and sort key.
func (s *StorefrontService) Search(term, sortRaw string) ([]model.Product, error) {
	key, err := catalog.ParseSortKey(sortRaw)
	if err != nil {
		return nil, err
	}
	metrics.CatalogSearches.Inc()
	return catalog.FilterAndSort(s.store.All(), term, key), nil
}

// Select picks the product for ordering. Unknown IDs surface as
// catalog.ErrProductNotFound and leave the selection untouched.
func (s *StorefrontService) Select(id int) (selection.Snapshot, error) {
	snap, err := s.sel.Select(s.store, id)
	if err != nil {
		return selection.Snapshot{}, err
	}
	slog.Debug("product selected", slog.Int("product_id", id), slog.String("name", snap.Product.Name))
	return snap, nil
}

// SetQuantity applies a customer-entered quantity to the selection, clamping
// anything that is not a positive integer to 1.
func (s *StorefrontService) SetQuantity(raw string) (selection.Snapshot, error) {
	return s.sel.SetQuantity(raw)
}

// SubmitOrder validates the customer fields, composes the order, and builds
// the outbound channel action. A validation failure leaves the flow at
// selected so the customer can be re-prompted; it never advances the state.
func (s *StorefrontService) SubmitOrder(fields model.CustomerFields, channelRaw string) (dispatch.ChannelAction, error) {
	channel, err := dispatch.ParseChannel(channelRaw)
	if err != nil {
		return dispatch.ChannelAction{}, err
	}

	snap := s.sel.Snapshot()
	if !snap.Selected {
		return dispatch.ChannelAction{}, selection.ErrNoSelection
	}

	if err := order.Validate(fields); err != nil {
		metrics.ValidationFailures.Inc()
		return dispatch.ChannelAction{}, err
	}

	record, err := order.Compose(snap, fields, s.now())
	if err != nil {
		return dispatch.ChannelAction{}, err
	}
	if err := s.sel.MarkComposed(); err != nil {
		return dispatch.ChannelAction{}, err
	}
	metrics.OrdersComposed.Inc()

	action, err := s.dispatcher.BuildChannelAction(record, channel)
	if err != nil {
		return dispatch.ChannelAction{}, err
	}
	if err := s.sel.MarkDispatched(); err != nil {
		return dispatch.ChannelAction{}, err
	}
	metrics.OrdersDispatched.WithLabelValues(string(channel)).Inc()

	slog.Info("order dispatched",
		slog.String("order_id", record.ID.String()),
		slog.String("product", record.ProductName),
		slog.Int("quantity", record.Quantity),
		slog.Int("total", record.Total),
		slog.String("channel", string(channel)),
	)
	return action, nil
}

// CloseOrder clears the selection and returns the flow to idle. The UI calls
// it when the order modal closes, whether or not an order was dispatched.
func (s *StorefrontService) CloseOrder() {
	s.sel.Clear()
}

// Selection returns a snapshot of the current selection.
func (s *StorefrontService) Selection() selection.Snapshot {
	return s.sel.Snapshot()
}

// Flow returns the order flow state.
func (s *StorefrontService) Flow() selection.FlowState {
	return s.sel.Flow()
}
