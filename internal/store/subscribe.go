package store

import "svw.info/sudokupad/internal/domain"

// Subscribe registers fn to receive a snapshot after every published change.
// Callbacks run synchronously on the mutating goroutine in subscription
// order. The returned cancel func is safe to call more than once.
func (s *Store) Subscribe(fn func(domain.Snapshot)) (cancel func()) {
	s.load("Subscribe")
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(st *state) {
	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()
	if len(subs) == 0 {
		return
	}
	for _, sub := range subs {
		sub.fn(st.snapshot())
	}
}
