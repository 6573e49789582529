package controller

// Signal is a synchronous publish/subscribe channel. Every controller owns
// one; storage mutations emit on it and the rendering layer subscribes.
//
// Emission is single-threaded: handlers run on the caller's stack and must
// not mutate the same storage cell they were notified about.
type Signal struct {
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a cancel function. Handlers run in
// subscription order.
func (s *Signal) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit invokes all current subscribers. Subscribers added or removed during
// emission do not affect the in-flight pass.
func (s *Signal) Emit() {
	if len(s.subs) == 0 {
		return
	}
	current := make([]subscriber, len(s.subs))
	copy(current, s.subs)
	for _, sub := range current {
		sub.fn()
	}
}
