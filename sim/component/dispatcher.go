package component

import "sort"

// EventDispatcher fans a change notification out to its subscribers, in subscription order.
type EventDispatcher struct {
	subscribers map[uint64]func()
	sorted      []func()
	nextIndex   uint64
}

func MakeEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		subscribers: map[uint64]func(){},
		sorted:      nil,
		nextIndex:   0,
	}
}

func (ed *EventDispatcher) rebuildSorted() {
	var ints []uint64
	for k := range ed.subscribers {
		ints = append(ints, k)
	}
	sort.Slice(ints, func(i, j int) bool {
		return ints[i] < ints[j]
	})
	ed.sorted = make([]func(), len(ints))
	for i, k := range ints {
		ed.sorted[i] = ed.subscribers[k]
	}
}

func (ed *EventDispatcher) Subscribe(callback func()) (cancel func()) {
	index := ed.nextIndex
	ed.subscribers[index] = callback
	ed.rebuildSorted()
	ed.nextIndex += 1
	return func() {
		if _, ok := ed.subscribers[index]; ok {
			delete(ed.subscribers, index)
			ed.rebuildSorted()
		}
	}
}

func (ed *EventDispatcher) Subscribers() int {
	return len(ed.sorted)
}

func (ed *EventDispatcher) Dispatch() {
	// iterate over a snapshot, so that subscribers may cancel themselves
	for _, f := range ed.sorted {
		f()
	}
}
