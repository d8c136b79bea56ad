package docstore

import (
	"log"
	"sync"
)

// hub tracks snapshot listeners per path. Snapshots for one path are
// delivered in commit order; there is no ordering guarantee across paths.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func([]Document)
}

func newHub() *hub {
	return &hub{subs: map[string]map[int]func([]Document){}}
}

// add registers fn for path and returns its cancel func. Cancel is
// idempotent, so a double teardown never panics or removes a stranger.
func (h *hub) add(path string, fn func([]Document)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	if h.subs[path] == nil {
		h.subs[path] = map[int]func([]Document){}
	}
	h.subs[path][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[path], id)
			if len(h.subs[path]) == 0 {
				delete(h.subs, path)
			}
		})
	}
}

// notify re-lists path and hands the full snapshot to every listener.
// Listener callbacks run outside the hub lock so a callback may
// subscribe or unsubscribe without deadlocking.
func (h *hub) notify(s *Store, path string) {
	h.mu.Lock()
	fns := make([]func([]Document), 0, len(h.subs[path]))
	for _, fn := range h.subs[path] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	docs, err := s.List(path)
	if err != nil {
		log.Printf("snapshot fan-out for %s failed: %v", path, err)
		return
	}
	for _, fn := range fns {
		fn(docs)
	}
}
