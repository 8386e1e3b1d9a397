// Package cart holds the client-side shopping cart and checkout flow.
// The cart is owned by a single session: mutations are synchronous,
// the running total is recomputed from scratch after every one of
// them, and the whole state is mirrored to durable local storage.
package cart

import (
	"log"
	"strconv"
)

// FreeSize marks a one-size-fits-all product. When a product's size
// set is exactly this sentinel, AddItem fills the size in itself.
const FreeSize = "Free"

// Image is the client's view of a catalog image record.
type Image struct {
	Url string `json:"url"`
}

// Product is the client's snapshot of a catalog record. Name, price
// and first image are copied onto the cart line at add time; the line
// never re-reads them.
type Product struct {
	ID           uint     `json:"ID"`
	ProductId    string   `json:"productId"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Price        int      `json:"price"`
	RegularPrice int      `json:"regularPrice"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	Images       []Image  `json:"images"`
	IsNewArrival bool     `json:"isNewArrival"`
	IsTrending   bool     `json:"isTrending"`
	OnSale       bool     `json:"onSale"`
}

// Key is the catalog identity used for cart line matching.
func (p Product) Key() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

// Line is one product+size combination in the cart. Identity is
// (ProductId, Size); there is never more than one line per pair.
type Line struct {
	ProductId string `json:"id"`
	// Short numeric product id carried along for analytics.
	DisplayProductId string `json:"productId"`
	Name             string `json:"name"`
	Price            int    `json:"price"`
	Quantity         int    `json:"quantity"`
	Image            string `json:"image"`
	Size             string `json:"size"`
}

// Notify surfaces a user-facing message. Level is "success", "error"
// or "info".
type Notify func(message, level string)

// Engine maintains the line list and its derived total. The total is
// always recomputed by a full pass over the lines, never patched
// incrementally, so it cannot drift from the line set.
type Engine struct {
	lines  []Line
	total  int
	store  Storage
	notify Notify
}

// NewEngine builds an empty cart. Both collaborators are optional:
// a nil storage skips persistence, a nil notify logs instead.
func NewEngine(store Storage, notify Notify) *Engine {
	if notify == nil {
		notify = func(message, level string) {
			log.Printf("[%s] %s", level, message)
		}
	}
	return &Engine{store: store, notify: notify}
}

// Lines returns the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// Total is the current subtotal in integer currency units.
func (e *Engine) Total() int {
	return e.total
}

// AddItem puts quantity units of the product in the given size into
// the cart. An empty size is a user error unless the product is
// one-size, in which case the sentinel size is implied. An existing
// (product, size) line absorbs the quantity instead of duplicating.
func (e *Engine) AddItem(product Product, quantity int, size string) {
	if size == "" {
		if len(product.Sizes) == 1 && product.Sizes[0] == FreeSize {
			size = FreeSize
		} else {
			e.notify("Please select a size.", "error")
			return
		}
	}

	key := product.Key()
	if i := e.findLine(key, size); i >= 0 {
		// Merging below one unit removes the line; a quantity of zero
		// or less is never stored.
		merged := e.lines[i].Quantity + quantity
		if merged <= 0 {
			e.UpdateQuantity(key, size, 0)
			return
		}
		e.lines[i].Quantity = merged
		e.notify("Quantity updated for "+product.Name+" (Size: "+size+")!", "success")
	} else {
		if quantity <= 0 {
			return
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0].Url
		}
		displayId := product.ProductId
		if displayId == "" {
			displayId = key
		}
		e.lines = append(e.lines, Line{
			ProductId:        key,
			DisplayProductId: displayId,
			Name:             product.Name,
			Price:            product.Price,
			Quantity:         quantity,
			Image:            image,
			Size:             size,
		})
		e.notify(product.Name+" (Size: "+size+") added to cart!", "success")
	}

	e.recompute()
}

// UpdateQuantity replaces a line's quantity. Any value at or below
// zero removes the line; an unknown line is a silent no-op.
func (e *Engine) UpdateQuantity(productId, size string, newQuantity int) {
	i := e.findLine(productId, size)
	if i < 0 {
		return
	}

	if newQuantity <= 0 {
		e.lines = append(e.lines[:i], e.lines[i+1:]...)
	} else {
		e.lines[i].Quantity = newQuantity
	}

	e.recompute()
}

// RemoveItem deletes a line. It is quantity-zero by definition so
// removal always goes through the same recompute path.
func (e *Engine) RemoveItem(productId, size string) {
	e.UpdateQuantity(productId, size, 0)
}

// Clear empties the cart, used after a successful order submission.
func (e *Engine) Clear() {
	e.lines = nil
	e.recompute()
}

func (e *Engine) findLine(productId, size string) int {
	for i, line := range e.lines {
		if line.ProductId == productId && line.Size == size {
			return i
		}
	}
	return -1
}

// recompute derives the total from the full line set and mirrors the
// cart to storage. Every mutation ends here.
func (e *Engine) recompute() {
	total := 0
	for _, line := range e.lines {
		total += line.Price * line.Quantity
	}
	e.total = total

	if e.store != nil {
		if err := e.store.SaveLines(e.lines); err != nil {
			log.Println("Failed to persist cart:", err)
		}
	}
}

// Restore replaces the cart contents with previously persisted lines,
// dropping any that are malformed.
func (e *Engine) Restore(lines []Line) {
	e.lines = nil
	for _, line := range lines {
		if line.ProductId == "" || line.Price <= 0 || line.Quantity <= 0 {
			continue
		}
		e.lines = append(e.lines, line)
	}
	e.recompute()
}
