package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Quantity bounds for a single order item.
const (
	MinQuantity = 1
	MaxQuantity = 10

	// DefaultQuantity is applied when a request omits the quantity.
	DefaultQuantity = 1
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem. This ensures all items are validated.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a single product/size/quantity line within an order.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Product and size must be members of their catalogs
//   - Quantity must be within [MinQuantity, MaxQuantity]
//   - Belongs to exactly one order; items are never shared
//
// Item is a value object from the caller's perspective: once built it is
// never mutated, only replaced wholesale via Order.UpdateItems.
type Item struct {
	// id is the unique identifier, generated when the item is added to an order
	id kernel.UUID

	// product is the catalog entry this line refers to
	product Product

	// size is the portion size
	size Size

	// quantity is the number of units, within [MinQuantity, MaxQuantity]
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates an Item with a freshly generated identifier.
// Returns an error if the product, size, or quantity is invalid.
func NewItem(product Product, size Size, quantity int) (Item, error) {
	return RestoreItem(kernel.NewUUID(), product, size, quantity)
}

// RestoreItem reconstructs an Item with a known identifier, typically when
// loading from persistence. The same validation as NewItem applies.
func RestoreItem(id kernel.UUID, product Product, size Size, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(product),
		item.setSize(size),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i Item) IsEqual(other Item) bool {
	return i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Product returns the catalog product of the item.
func (i Item) Product() Product {
	return i.product
}

// Size returns the portion size of the item.
func (i Item) Size() Size {
	return i.size
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *Item) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}
