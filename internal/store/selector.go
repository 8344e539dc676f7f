package store

// Selector routes every operation to the durable store while it is reachable
// and to the volatile store otherwise. Reachability is re-checked on each
// call, so a durable store that comes and goes during the process lifetime is
// picked up without a restart.
type Selector struct {
	durable  *DurableStore
	volatile *MemoryStore
}

// NewSelector accepts a nil durable store for processes that never managed to
// open one.
func NewSelector(durable *DurableStore, volatile *MemoryStore) *Selector {
	return &Selector{durable: durable, volatile: volatile}
}

func (selector *Selector) Active() RecordStore {
	if selector.durable != nil && selector.durable.Alive() {
		return selector.durable
	}
	return selector.volatile
}
