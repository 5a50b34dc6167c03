package shelf

// entry is one slot of the item store.
type entry struct {
	item    Item
	layout  LayoutHandle
	focused LayoutHandle
}

// itemStore holds static items (owned by the container, kept across resets)
// followed by dynamic items bound from a data source, followed by extra
// filler entries appended by wrapping containers.
type itemStore struct {
	static  []Item
	dynamic []Item
	entries []entry
	extra   int
}

func (s *itemStore) len() int {
	return len(s.entries)
}

// logicalLen is the number of real (non-filler) entries.
func (s *itemStore) logicalLen() int {
	return len(s.entries) - s.extra
}

func (s *itemStore) at(i int) *entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}

// rebuild lays the entries out again from static and dynamic items. The
// caller must have released every layout handle.
func (s *itemStore) rebuild() {
	s.entries = s.entries[:0]
	s.extra = 0
	for _, it := range s.static {
		s.entries = append(s.entries, entry{item: it})
	}
	for _, it := range s.dynamic {
		s.entries = append(s.entries, entry{item: it})
	}
}

// append adds one dynamic item after the existing real entries. Filler
// entries must have been stripped first.
func (s *itemStore) append(it Item) {
	s.dynamic = append(s.dynamic, it)
	s.entries = append(s.entries, entry{item: it})
}

// pad appends cyclic copies of the real entries until the store holds at
// least n entries. An empty store stays empty.
func (s *itemStore) pad(n int) {
	count := s.logicalLen()
	if count == 0 {
		return
	}
	for i := 0; len(s.entries) < n; i++ {
		s.entries = append(s.entries, entry{item: s.entries[i%count].item})
		s.extra++
	}
}

// unpad drops filler entries and returns them so their layout handles can
// be released.
func (s *itemStore) unpad() []entry {
	if s.extra == 0 {
		return nil
	}
	count := s.logicalLen()
	dropped := append([]entry(nil), s.entries[count:]...)
	s.entries = s.entries[:count]
	s.extra = 0
	return dropped
}

// items returns the real items in store order.
func (s *itemStore) items() []Item {
	out := make([]Item, 0, s.logicalLen())
	for _, e := range s.entries[:s.logicalLen()] {
		out = append(out, e.item)
	}
	return out
}
