// Package events provides the change-notification registry used by the
// cookbook repository.
package events

import "github.com/google/uuid"

// SubscriptionID identifies one registered callback
type SubscriptionID string

// ChangeFunc is invoked synchronously after a collection mutation has been
// committed. It carries no payload; subscribers re-read the repository.
type ChangeFunc func()

// Notifier is a registry of change callbacks. It is not safe for concurrent
// use; the repository it serves is single-threaded by design.
type Notifier struct {
	subscribers map[SubscriptionID]ChangeFunc
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{subscribers: make(map[SubscriptionID]ChangeFunc)}
}

// Subscribe registers fn and returns an ID for later removal. A nil fn is
// ignored and yields an ID that unsubscribes to nothing.
func (n *Notifier) Subscribe(fn ChangeFunc) SubscriptionID {
	id := SubscriptionID(uuid.NewString())
	if fn != nil {
		n.subscribers[id] = fn
	}
	return id
}

// Unsubscribe removes the callback registered under id. Unknown IDs are a
// no-op, so unsubscribing twice is harmless.
func (n *Notifier) Unsubscribe(id SubscriptionID) {
	delete(n.subscribers, id)
}

// Len returns the number of registered callbacks
func (n *Notifier) Len() int {
	return len(n.subscribers)
}

// Notify invokes every registered callback once. Dispatch runs over a
// snapshot taken before the first call, so a subscriber unsubscribing
// itself (or others) from within its callback does not disturb the
// in-flight dispatch.
func (n *Notifier) Notify() {
	if len(n.subscribers) == 0 {
		return
	}

	snapshot := make([]ChangeFunc, 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		snapshot = append(snapshot, fn)
	}

	for _, fn := range snapshot {
		fn()
	}
}
