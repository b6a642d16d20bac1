package events

import (
	"fmt"
	"io"
)

var _ Subscriber = (*UserSubscriber)(nil)

// UserSubscriber greets a shopper by name whenever a product is introduced.
type UserSubscriber struct {
	Name string
	Out  io.Writer
}

// NewUserSubscriber returns a subscriber printing to out.
func NewUserSubscriber(name string, out io.Writer) *UserSubscriber {
	return &UserSubscriber{Name: name, Out: out}
}

// OnProductAdded implements Subscriber.
func (u *UserSubscriber) OnProductAdded(productName string) {
	fmt.Fprintf(u.Out, "Hola %s, ¡Nuevo producto agregado! Nombre del producto: %s\n", u.Name, productName)
}
