package dev

// Erased is the value an unwritten storage cell reads back as.
const Erased byte = 0xFF

// MemStore is a volatile Store whose cells start erased.
type MemStore struct {
	cells []byte
}

func NewMemStore(size int) *MemStore {
	s := &MemStore{cells: make([]byte, size)}
	for i := range s.cells {
		s.cells[i] = Erased
	}
	return s
}

func (s *MemStore) Get(addr uint16) (byte, error) {
	if int(addr) >= len(s.cells) {
		return 0, ErrInvalidAddress
	}
	return s.cells[addr], nil
}

func (s *MemStore) Set(addr uint16, v byte) error {
	if int(addr) >= len(s.cells) {
		return ErrInvalidAddress
	}
	s.cells[addr] = v
	return nil
}
