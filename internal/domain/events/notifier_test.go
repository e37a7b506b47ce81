package events

import "testing"

func TestNotifier_Notify_NoSubscribers(t *testing.T) {
	n := NewNotifier()
	// Must be a plain no-op
	n.Notify()
}

func TestNotifier_Notify_EachSubscriberOnce(t *testing.T) {
	n := NewNotifier()

	counts := make(map[string]int)
	n.Subscribe(func() { counts["a"]++ })
	n.Subscribe(func() { counts["b"]++ })

	n.Notify()

	if counts["a"] != 1 || counts["b"] != 1 {
		t.Errorf("each subscriber should run exactly once, got %v", counts)
	}

	n.Notify()
	if counts["a"] != 2 || counts["b"] != 2 {
		t.Errorf("second Notify() should run each subscriber again, got %v", counts)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()

	calls := 0
	id := n.Subscribe(func() { calls++ })
	n.Unsubscribe(id)
	n.Notify()

	if calls != 0 {
		t.Errorf("unsubscribed callback ran %d times", calls)
	}

	// Unknown and repeated IDs are harmless
	n.Unsubscribe(id)
	n.Unsubscribe(SubscriptionID("bogus"))
}

func TestNotifier_UnsubscribeSelfDuringDispatch(t *testing.T) {
	n := NewNotifier()

	selfCalls := 0
	otherCalls := 0

	var selfID SubscriptionID
	selfID = n.Subscribe(func() {
		selfCalls++
		n.Unsubscribe(selfID)
	})
	n.Subscribe(func() { otherCalls++ })

	n.Notify()

	if selfCalls != 1 {
		t.Errorf("self-unsubscribing callback ran %d times during first dispatch", selfCalls)
	}
	if otherCalls != 1 {
		t.Errorf("sibling callback skipped or repeated, ran %d times", otherCalls)
	}

	n.Notify()
	if selfCalls != 1 {
		t.Error("callback still registered after unsubscribing itself")
	}
	if otherCalls != 2 {
		t.Errorf("remaining callback should keep firing, ran %d times", otherCalls)
	}
}

func TestNotifier_SubscribeNil(t *testing.T) {
	n := NewNotifier()
	id := n.Subscribe(nil)
	if n.Len() != 0 {
		t.Error("nil callback must not be registered")
	}
	n.Unsubscribe(id)
	n.Notify()
}
