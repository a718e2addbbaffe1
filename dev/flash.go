package dev

// BlockDevice is the subset of machine.Flash used for persistent slots.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	EraseBlockSize() int64
	EraseBlocks(start, length int64) error
}

// FlashStore keeps the slots in one erase block of a flash device. The block is
// cached on first access and rewritten whole on every change.
type FlashStore struct {
	dev   BlockDevice
	block int64
	buf   []byte
}

func NewFlashStore(dev BlockDevice, block int64) *FlashStore {
	return &FlashStore{
		dev:   dev,
		block: block,
	}
}

func (s *FlashStore) Get(addr uint16) (byte, error) {
	if err := s.load(addr); err != nil {
		return 0, err
	}
	return s.buf[addr], nil
}

func (s *FlashStore) Set(addr uint16, v byte) error {
	if err := s.load(addr); err != nil {
		return err
	}
	if s.buf[addr] == v {
		return nil
	}
	s.buf[addr] = v
	if err := s.dev.EraseBlocks(s.block, 1); err != nil {
		return err
	}
	_, err := s.dev.WriteAt(s.buf, s.block*int64(len(s.buf)))
	return err
}

func (s *FlashStore) load(addr uint16) error {
	if s.buf == nil {
		size := s.dev.EraseBlockSize()
		buf := make([]byte, size)
		if _, err := s.dev.ReadAt(buf, s.block*size); err != nil {
			return err
		}
		s.buf = buf
	}
	if int(addr) >= len(s.buf) {
		return ErrInvalidAddress
	}
	return nil
}
