package views

import (
	"context"
	"sync"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// DetailOverlay is the modal product-detail state. It fetches a single
// product on demand, keeps at most one record at a time, and discards the
// fetched detail when closed.
//
// In-flight requests are not aborted. Each Open bumps a request sequence and
// a resolution is applied only while its sequence is still current, so a slow
// response for a superseded request can never overwrite a newer one.
type DetailOverlay struct {
	client api.Client
	log    logging.Logger

	mu          sync.Mutex
	seq         uint64
	open        bool
	loading     bool
	failed      bool
	detail      *api.ProductDetail
	requestedID int
	imageIndex  int
}

func NewDetailOverlay(client api.Client, log logging.Logger) *DetailOverlay {
	return &DetailOverlay{client: client, log: log.With("view", "detail")}
}

// Open puts the overlay into its loading state immediately and issues the
// detail fetch in the background. Opening while already open supersedes the
// previous request. The returned channel closes when this particular request
// settles (applied or discarded as stale), so callers can wait on it.
func (o *DetailOverlay) Open(ctx context.Context, id int) <-chan struct{} {
	o.mu.Lock()
	o.seq++
	token := o.seq
	o.open = true
	o.loading = true
	o.failed = false
	o.detail = nil
	o.requestedID = id
	o.imageIndex = 0
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		detail, err := o.client.GetProduct(ctx, id)
		o.resolve(ctx, token, detail, err)
	}()
	return done
}

// resolve applies a fetch result if its request is still the current one.
func (o *DetailOverlay) resolve(ctx context.Context, token uint64, detail *api.ProductDetail, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.seq || !o.open {
		o.log.Debug(ctx, "discarding stale detail response", "token", token)
		return
	}

	o.loading = false
	if err != nil {
		o.log.Warn(ctx, "detail fetch failed", "id", o.requestedID, "error", err.Error())
		o.failed = true
		return
	}
	o.detail = detail
}

// Close discards the fetched detail and resets the overlay, including the
// selected image index.
func (o *DetailOverlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = false
	o.loading = false
	o.failed = false
	o.detail = nil
	o.requestedID = 0
	o.imageIndex = 0
}

// IsOpen reports whether the overlay is showing.
func (o *DetailOverlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// Loading reports whether the current request is still in flight.
func (o *DetailOverlay) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Failed reports whether the current request ended in the "failed to load"
// placeholder state.
func (o *DetailOverlay) Failed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failed
}

// Detail returns the fetched record, or nil while loading/failed/closed.
func (o *DetailOverlay) Detail() *api.ProductDetail {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detail
}

// RequestedID is the product id of the most recent Open.
func (o *DetailOverlay) RequestedID() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.requestedID
}

// SelectImage picks an image from the fetched detail's image strip.
// Out-of-range indexes are clamped; without a fetched detail it is a no-op.
func (o *DetailOverlay) SelectImage(i int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.detail == nil || len(o.detail.Images) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(o.detail.Images) {
		i = len(o.detail.Images) - 1
	}
	o.imageIndex = i
}

// ImageIndex is the currently selected image, 0 by default.
func (o *DetailOverlay) ImageIndex() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.imageIndex
}
