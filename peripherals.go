//go:build rp2040

package main

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
	"github.com/itohio/tagdisplay/game"
)

func configureInputs() {
	config.Fire.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	config.Shield.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	config.Beacon.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
}

func configureSegments() *dev.SegmentDisplay {
	for _, p := range config.SegmentPins() {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	return dev.NewSegmentDisplay(
		dev.DigitPins{
			A: config.TensA, B: config.TensB, C: config.TensC, D: config.TensD,
			E: config.TensE, F: config.TensF, G: config.TensG,
		},
		dev.DigitPins{
			A: config.UnitsA, B: config.UnitsB, C: config.UnitsC, D: config.UnitsD,
			E: config.UnitsE, F: config.UnitsF, G: config.UnitsG,
		},
	)
}

func configureStore() *dev.FlashStore {
	blocks := machine.Flash.Size() / machine.Flash.EraseBlockSize()
	return dev.NewFlashStore(machine.Flash, blocks-1)
}

// configureMirror repeats every frame on an SSD1306 with a health/shield status line.
func configureMirror(display *dev.SegmentDisplay, seq *game.Sequencer) error {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       config.MirrorSDA,
		SCL:       config.MirrorSCL,
	})
	if err != nil {
		return err
	}
	// the delay is needed for display start from a cold reboot
	time.Sleep(time.Millisecond * 100)
	oled := ssd1306.NewI2C(machine.I2C0)
	oled.Configure(ssd1306.Config{Width: 128, Height: 64, Address: config.MirrorAddress, VccState: ssd1306.SWITCHCAPVCC})
	oled.ClearDisplay()

	panel := dev.NewPanel(&oled, &proggy.TinySZ8pt7b)
	panel.SetStatus(func() string {
		st := seq.State()
		return fmt.Sprintf("%s HP%02d SH%02d", seq.Phase(), st.Health, st.Shields)
	})
	display.Observe(func(f dev.Frame) {
		if err := panel.Draw(f); err != nil {
			println("mirror: " + err.Error())
		}
	})
	return nil
}

// pinPower parks the board once the game is over.
type pinPower struct{}

func (pinPower) Halt() {
	for _, p := range config.SegmentPins() {
		p.Low()
	}
	for {
		time.Sleep(time.Hour)
	}
}
