package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Product identifies what an order item is for. The catalog is a fixed
// enumeration: six pizzas and four drinks. Product is a value object parsed
// from and rendered to its lowercase wire name.
type Product int

const (
	// UnknownProduct represents an invalid or undefined product.
	UnknownProduct Product = iota

	ProductCheese
	ProductPepperoni
	ProductDeluxe
	ProductHawaiian
	ProductCanadian
	ProductVeggie

	ProductCoke
	ProductSprite
	ProductGingerale
	ProductIcedtea
)

// getValidProductStrings returns the wire names of every valid product.
// UnknownProduct is excluded to support validation and parsing.
func getValidProductStrings() map[Product]string {
	//nolint:exhaustive // UnknownProduct is intentionally excluded as it's invalid
	return map[Product]string{
		ProductCheese:    "cheese",
		ProductPepperoni: "pepperoni",
		ProductDeluxe:    "deluxe",
		ProductHawaiian:  "hawaiian",
		ProductCanadian:  "canadian",
		ProductVeggie:    "veggie",
		ProductCoke:      "coke",
		ProductSprite:    "sprite",
		ProductGingerale: "gingerale",
		ProductIcedtea:   "icedtea",
	}
}

// ProductFromString parses a product from its wire representation.
// Returns an error if the string does not name a catalog product.
func ProductFromString(s string) (Product, error) {
	for product, str := range getValidProductStrings() {
		if str == s {
			return product, nil
		}
	}
	return UnknownProduct, errs.NewValueIsInvalidErrorWithCause(
		"product",
		fmt.Errorf("%q is not a valid product", s),
	)
}

// Validate checks if the Product value is a member of the catalog.
func (p Product) Validate() error {
	if _, ok := getValidProductStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("%d is not a valid product", p))
	}
	return nil
}

// String returns the wire-format name of the product.
// Returns "unknown" for invalid product values.
func (p Product) String() string {
	if str, ok := getValidProductStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Size is the portion size of an order item.
type Size int

const (
	// UnknownSize represents an invalid or undefined size.
	UnknownSize Size = iota

	SizeSmall
	SizeMedium
	SizeLarge
	SizeXlarge
)

// getValidSizeStrings returns the wire names of every valid size.
// UnknownSize is excluded to support validation and parsing.
func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // UnknownSize is intentionally excluded as it's invalid
	return map[Size]string{
		SizeSmall:  "small",
		SizeMedium: "medium",
		SizeLarge:  "large",
		SizeXlarge: "xlarge",
	}
}

// SizeFromString parses a size from its wire representation.
// Returns an error if the string does not name a valid size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size", s))
}

// Validate checks if the Size value is valid.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the wire-format name of the size.
// Returns "unknown" for invalid size values.
func (s Size) String() string {
	if str, ok := getValidSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
