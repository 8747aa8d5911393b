package billing

import (
	"fmt"

	"github.com/pearlpotter/Billing-Software/internal/models"

	"github.com/shopspring/decimal"
)

// Cart is the mutable draft of a bill: an ordered list of lines keyed by
// product. Rates are frozen at the moment a product is added, so later
// price edits in the catalog never touch an open cart.
type Cart struct {
	Items []models.BillItem
}

// RateFor picks the price a customer pays for a product.
func RateFor(p models.Product, customerType models.CustomerType) decimal.Decimal {
	if customerType == models.CustomerTypeWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// AddLine puts one unit of the product on the cart at the customer's rate.
// If the product already has a line, its quantity is bumped instead of a
// duplicate line being added. The product's current stock caps the result.
func (c *Cart) AddLine(p models.Product, customerType models.CustomerType) error {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			return c.SetQuantity(p.ID, c.Items[i].Quantity+1, p.Stock)
		}
	}

	if p.Stock < 1 {
		return fmt.Errorf("%w: %s has no stock", ErrInsufficientStock, p.Name)
	}

	rate := RateFor(p, customerType)
	c.Items = append(c.Items, models.BillItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
		Rate:      rate,
		Total:     rate,
	})
	return nil
}

// SetQuantity changes a line's quantity and recomputes its total. The cart
// is left untouched on any error.
func (c *Cart) SetQuantity(productID uint, quantity, stock int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > stock {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, stock)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.Items[i].Total = c.Items[i].Rate.Mul(decimal.NewFromInt(int64(quantity)))
			return nil
		}
	}
	return fmt.Errorf("product %d is not on the bill", productID)
}

// RemoveLine deletes a line unconditionally. Removing a product that isn't
// on the cart is a no-op.
func (c *Cart) RemoveLine(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
