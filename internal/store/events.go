package store

import (
	"sync"
	"time"
)

// Action names what a mutation did.
type Action string

const (
	ActionCreated      Action = "created"
	ActionUpdated      Action = "updated"
	ActionDeleted      Action = "deleted"
	ActionRecalculated Action = "recalculated"
	ActionContributed  Action = "contributed"
)

// Resource names the kind of record a mutation touched.
type Resource string

const (
	ResourceTransaction Resource = "transaction"
	ResourcePortfolio   Resource = "portfolio"
	ResourceInvestment  Resource = "investment"
	ResourceGoal        Resource = "goal"
)

// Event describes one applied mutation.
type Event struct {
	Action      Action
	Resource    Resource
	ResourceID  string
	PortfolioID string // set for portfolio and investment events
	Changes     map[string]any
	At          time.Time
}

// Listener receives store events.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

type dispatcher struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

func newDispatcher() *dispatcher {
	return &dispatcher{}
}

func (d *dispatcher) add(fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, sub := range d.subs {
		if sub.id == id {
			d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			return
		}
	}
}

// publish calls every listener in registration order.
func (d *dispatcher) publish(ev Event) {
	d.mu.Lock()
	subs := make([]subscription, len(d.subs))
	copy(subs, d.subs)
	d.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}
