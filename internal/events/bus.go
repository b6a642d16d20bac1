package events

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Subscriber reacts to products being introduced to the shop. Implementations should
// be pointers: Detach matches by identity and cannot match non-comparable values.
type Subscriber interface {
	OnProductAdded(productName string)
}

// Bus records introduced products and fans each one out to attached subscribers.
type Bus struct {
	Logger    zerolog.Logger
	Delivered prometheus.Counter

	subscribers []Subscriber
	products    []string
}

// NewBus returns a bus with no subscribers.
func NewBus(logger zerolog.Logger, delivered prometheus.Counter) *Bus {
	return &Bus{Logger: logger, Delivered: delivered}
}

// Attach appends sub. Attaching the same subscriber twice delivers twice.
func (b *Bus) Attach(sub Subscriber) {
	if sub == nil {
		return
	}
	b.subscribers = append(b.subscribers, sub)
}

// Detach removes the first attachment of sub, if any. Subscribers of a
// non-comparable type are never matched.
func (b *Bus) Detach(sub Subscriber) {
	if sub == nil || !reflect.TypeOf(sub).Comparable() {
		return
	}
	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Announce delivers productName to every subscriber in attachment order.
func (b *Bus) Announce(productName string) {
	for _, sub := range b.subscribers {
		sub.OnProductAdded(productName)
		if b.Delivered != nil {
			b.Delivered.Inc()
		}
	}
	b.Logger.Debug().
		Str("topic", TopicProductAdded).
		Str("product", productName).
		Int("subscribers", len(b.subscribers)).
		Msg("product_announced")
}

// IntroduceProduct records the product name and announces it.
func (b *Bus) IntroduceProduct(productName string) {
	b.products = append(b.products, productName)
	b.Announce(productName)
}

// Products lists introduced product names in introduction order.
func (b *Bus) Products() []string {
	out := make([]string, len(b.products))
	copy(out, b.products)
	return out
}
