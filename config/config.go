package config

import "time"

// Timing holds every duration the control loop compares against.
type Timing struct {
	Debounce        time.Duration `env:"DEBOUNCE" envDefault:"55ms"`
	Poll            time.Duration `env:"POLL" envDefault:"1ms"`
	StartupTimeout  time.Duration `env:"STARTUP_TIMEOUT" envDefault:"60s"`
	AdvancedTimeout time.Duration `env:"ADVANCED_TIMEOUT" envDefault:"110s"`
	HoldThreshold   time.Duration `env:"HOLD_THRESHOLD" envDefault:"1s"`
	RepeatInterval  time.Duration `env:"REPEAT_INTERVAL" envDefault:"100ms"`
	CountdownStep   time.Duration `env:"COUNTDOWN_STEP" envDefault:"1s"`
	ShieldPeriod    time.Duration `env:"SHIELD_PERIOD" envDefault:"999ms"`
	DepletedHold    time.Duration `env:"DEPLETED_HOLD" envDefault:"60s"`
}

// Preset is a starting health/shield pair.
type Preset struct {
	Health  int `env:"HEALTH"`
	Shields int `env:"SHIELDS"`
}

// Settings is the full device configuration.
type Settings struct {
	Timing Timing `envPrefix:"TAG_"`

	Normal    Preset `envPrefix:"TAG_NORMAL_"`
	Alternate Preset `envPrefix:"TAG_ALTERNATE_"`
	Advanced  Preset `envPrefix:"TAG_ADVANCED_"`

	CountdownFrom int `env:"TAG_COUNTDOWN_FROM" envDefault:"10"`
	ShieldCharge  int `env:"TAG_SHIELD_CHARGE" envDefault:"10"`

	HealthSlot uint16 `env:"TAG_HEALTH_SLOT" envDefault:"46"`
	ShieldSlot uint16 `env:"TAG_SHIELD_SLOT" envDefault:"47"`
}

// Default returns the stock configuration of the device.
func Default() Settings {
	return Settings{
		Timing: Timing{
			Debounce:        55 * time.Millisecond,
			Poll:            time.Millisecond,
			StartupTimeout:  60 * time.Second,
			AdvancedTimeout: 110 * time.Second,
			HoldThreshold:   time.Second,
			RepeatInterval:  100 * time.Millisecond,
			CountdownStep:   time.Second,
			ShieldPeriod:    999 * time.Millisecond,
			DepletedHold:    60 * time.Second,
		},
		Normal:        Preset{Health: 10, Shields: 15},
		Alternate:     Preset{Health: 25, Shields: 30},
		Advanced:      Preset{Health: 30, Shields: 10},
		CountdownFrom: 10,
		ShieldCharge:  10,
		HealthSlot:    46,
		ShieldSlot:    47,
	}
}
