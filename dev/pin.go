package dev

// Input is an active-high digital line. machine.Pin satisfies it on TinyGo targets.
type Input interface {
	Get() bool
}

// Output is a digital line driven high or low. machine.Pin satisfies it on TinyGo targets.
type Output interface {
	Set(bool)
}

// Power requests the lowest-power halt. Hardware implementations never return.
type Power interface {
	Halt()
}

// Store is a byte-addressable persistent region.
type Store interface {
	Get(addr uint16) (byte, error)
	Set(addr uint16, v byte) error
}
