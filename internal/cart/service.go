package cart

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-cli/internal/catalog"
	"github.com/noah-isme/toko-cli/internal/obs"
	"github.com/noah-isme/toko-cli/internal/pricing"
)

// Line is one product added to the cart together with the quantity requested at that time.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

// Cart holds the lines of the running session and prints the outcome of every operation.
//
// Prices are computed from Product.LastQuantity rather than Line.Quantity: adding a
// product stamps the shared catalog entry, so repeated lines for the same product all
// report the most recent quantity.
type Cart struct {
	Out     io.Writer
	Logger  zerolog.Logger
	Metrics *obs.SessionMetrics
	NewID   func() uuid.UUID

	lines []Line
}

// New returns an empty cart printing to out.
func New(out io.Writer, logger zerolog.Logger, metrics *obs.SessionMetrics) *Cart {
	return &Cart{Out: out, Logger: logger, Metrics: metrics}
}

func (c *Cart) newID() uuid.UUID {
	if c.NewID != nil {
		return c.NewID()
	}
	return uuid.New()
}

// AddLine stamps qty on the product and appends a line for it.
func (c *Cart) AddLine(product *catalog.Product, qty int) {
	product.LastQuantity = qty
	c.lines = append(c.lines, Line{Product: product, Quantity: qty})
	fmt.Fprintf(c.Out, "%d %s(s) agregado(s) al carrito.\n", qty, product.Name)

	if c.Metrics != nil {
		c.Metrics.CartLinesAdded.WithLabelValues(product.Name).Inc()
	}
	c.Logger.Info().
		Str("product_id", product.ID.String()).
		Str("product", product.Name).
		Int("qty", qty).
		Int("lines", len(c.lines)).
		Msg("cart_line_added")
}

// View prints every line with its price and the cart total.
func (c *Cart) View() {
	if len(c.lines) == 0 {
		fmt.Fprintln(c.Out, "El carrito está vacío.")
		return
	}
	fmt.Fprintln(c.Out, "Contenido del carrito:")
	amounts := make([]decimal.Decimal, 0, len(c.lines))
	for _, line := range c.lines {
		price := line.Product.Price()
		amounts = append(amounts, price)
		fmt.Fprintf(c.Out, "- %s (Cantidad: %d) - Precio: %s\n",
			line.Product.Name, line.Product.LastQuantity, pricing.Format(price))
	}
	fmt.Fprintf(c.Out, "Total del carrito: %s\n", pricing.Format(pricing.Total(amounts)))
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.reset()
	fmt.Fprintln(c.Out, "El carrito ha sido vaciado.")
	c.Logger.Info().Msg("cart_cleared")
}

// FinalizeOrder echoes the shipping details and empties the cart. An empty cart is
// rejected and left untouched. It reports whether the order went through.
func (c *Cart) FinalizeOrder(address, phone string) bool {
	if len(c.lines) == 0 {
		fmt.Fprintln(c.Out, "No puedes finalizar el pedido porque el carrito está vacío.")
		if c.Metrics != nil {
			c.Metrics.Orders.WithLabelValues("rejected").Inc()
		}
		c.Logger.Warn().Msg("order_rejected")
		return false
	}

	fmt.Fprintln(c.Out, "Pedido finalizado:")
	fmt.Fprintf(c.Out, "Dirección de envío: %s\n", address)
	fmt.Fprintf(c.Out, "Número de teléfono: %s\n", phone)
	fmt.Fprintln(c.Out, "¡Pedido finalizado!")

	orderID := c.newID()
	lines := len(c.lines)
	c.reset()
	if c.Metrics != nil {
		c.Metrics.Orders.WithLabelValues("finalized").Inc()
	}
	c.Logger.Info().
		Str("order_id", orderID.String()).
		Int("lines", lines).
		Msg("order_finalized")
	return true
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports how many lines the cart holds.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) reset() {
	c.lines = c.lines[:0]
}
