package persist

import "sync"

// Observers is a list of change callbacks run in registration order.
type Observers struct {
	mu   sync.Mutex
	next int
	fns  []registered
}

type registered struct {
	id int
	fn func()
}

// Add registers fn and returns a func that removes it again.
func (o *Observers) Add(fn func()) (remove func()) {
	o.mu.Lock()
	id := o.next
	o.next++
	o.fns = append(o.fns, registered{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, r := range o.fns {
			if r.id == id {
				o.fns = append(o.fns[:i:i], o.fns[i+1:]...)
				return
			}
		}
	}
}

// Notify runs every registered callback. Callbacks may add or remove
// observers; changes take effect on the next Notify.
func (o *Observers) Notify() {
	o.mu.Lock()
	fns := make([]func(), len(o.fns))
	for i, r := range o.fns {
		fns[i] = r.fn
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
