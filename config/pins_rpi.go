package config

// RPiPins names the Raspberry Pi GPIO lines by their periph.io registry names.
// Segment lists are ordered A through G.
type RPiPins struct {
	Fire   string   `env:"TAG_PIN_FIRE" envDefault:"GPIO17"`
	Shield string   `env:"TAG_PIN_SHIELD" envDefault:"GPIO27"`
	Beacon string   `env:"TAG_PIN_BEACON" envDefault:"GPIO22"`
	Tens   []string `env:"TAG_PINS_TENS" envSeparator:"," envDefault:"GPIO2,GPIO3,GPIO4,GPIO14,GPIO15,GPIO18,GPIO23"`
	Units  []string `env:"TAG_PINS_UNITS" envSeparator:"," envDefault:"GPIO24,GPIO25,GPIO8,GPIO7,GPIO12,GPIO16,GPIO20"`
}
