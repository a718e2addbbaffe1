package game_test

import (
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
	"github.com/itohio/tagdisplay/game"
	"github.com/itohio/tagdisplay/sim"
)

const s = time.Second

func newGame(t *testing.T, store dev.Store) (*sim.Board, *game.Sequencer) {
	t.Helper()
	b := sim.NewBoard(store)
	b.Clock.SetLimit(30 * time.Minute)
	seq := game.NewSequencer(game.Board{
		Fire:    b.Fire,
		Shield:  b.Shield,
		Beacon:  b.Beacon,
		Display: b.Display,
		Store:   b.Store,
		Clock:   b.Clock,
		Power:   b.Power,
	}, config.Default(), zerolog.Nop())
	return b, seq
}

// hits schedules n beacon flashes one second apart.
func hits(b *sim.Board, from time.Duration, n int) {
	for i := 0; i < n; i++ {
		b.Beacon.Press(from+time.Duration(i)*s, 200*time.Millisecond)
	}
}

func countdown(from int) []int {
	var out []int
	for i := from; i >= 0; i-- {
		out = append(out, i)
	}
	return out
}

func concat(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func assertHalted(t *testing.T, b *sim.Board, seq *game.Sequencer) time.Duration {
	t.Helper()
	halted, at := b.Power.Halted()
	if !halted {
		t.Fatal("power was never halted")
	}
	if seq.Phase() != game.PhasePoweredDown {
		t.Fatalf("phase = %v, want powered-down", seq.Phase())
	}
	if b.Levels() != [14]bool{} {
		t.Fatal("segment lines left high after power down")
	}
	if !b.Trace[len(b.Trace)-1].Frame.IsBlank() {
		t.Fatal("last frame is not blank")
	}
	return at
}

func TestSequencer_NormalShortGame(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Fire.Press(2*s, 200*time.Millisecond)
	hits(b, 20*s, 10)

	seq.Run()

	want := concat([]int{10}, countdown(10), []int{10}, countdown(9), []int{0})
	if got := b.Numbers(); !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}

	// countdown frames and the health frame after it are one second apart
	for i := 2; i <= 12; i++ {
		if d := b.Trace[i].At - b.Trace[i-1].At; d != s {
			t.Fatalf("frame %d came %v after the previous one", i, d)
		}
	}
	if first := b.Trace[13]; first.At < 20*s || first.At > 20*s+100*time.Millisecond {
		t.Fatalf("first hit shown at %v", first.At)
	}

	at := assertHalted(t, b, seq)
	if at < 89*s || at > 90*s {
		t.Fatalf("halted at %v, want 60s after the last hit", at)
	}
}

func TestSequencer_ModeToggle(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Shield.Press(1*s, 200*time.Millisecond)
	b.Shield.Press(2*s, 200*time.Millisecond)
	b.Fire.Press(3*s, 200*time.Millisecond)
	hits(b, 20*s, 10)

	seq.Run()

	want := concat([]int{10, 25, 10}, countdown(10), []int{10}, countdown(9), []int{0})
	if got := b.Numbers(); !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	assertHalted(t, b, seq)
}

func TestSequencer_AlternatePreset(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Shield.Press(1*s, 200*time.Millisecond)
	b.Fire.Press(2*s, 200*time.Millisecond)
	hits(b, 20*s, 25)

	seq.Run()

	want := concat([]int{10, 25}, countdown(10), []int{25}, countdown(24), []int{0})
	if got := b.Numbers(); !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	if st := seq.State(); st.Shields != 30 {
		t.Fatalf("shields = %d, want 30", st.Shields)
	}
}

func TestSequencer_StartupTimeout(t *testing.T) {
	b, seq := newGame(t, nil)

	seq.Run()

	if got := b.Numbers(); !slices.Equal(got, []int{10}) {
		t.Fatalf("shown %v, want [10]", got)
	}
	at := assertHalted(t, b, seq)
	if at < 60*s || at > 60*s+10*time.Millisecond {
		t.Fatalf("halted at %v, want 60s", at)
	}
}

func TestSequencer_ToggleRestartsTimeout(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Shield.Press(50*s, 200*time.Millisecond)

	seq.Run()

	if got := b.Numbers(); !slices.Equal(got, []int{10, 25}) {
		t.Fatalf("shown %v, want [10 25]", got)
	}
	at := assertHalted(t, b, seq)
	if at < 110*s || at > 111*s {
		t.Fatalf("halted at %v, want 60s after the toggle", at)
	}
}

func TestSequencer_AdvancedEntry(t *testing.T) {
	cfg := config.Default()
	b, seq := newGame(t, nil)
	var phases []game.Phase
	seq.OnPhase(func(p game.Phase) { phases = append(phases, p) })

	b.Shield.Press(0, 500*time.Millisecond)
	for i := 0; i < 5; i++ {
		b.Fire.Press(s+time.Duration(i)*300*time.Millisecond, 100*time.Millisecond)
	}
	b.Shield.Press(3*s, 200*time.Millisecond)
	b.Shield.Press(4*s, 200*time.Millisecond)
	hits(b, 20*s, 35)

	seq.Run()

	if !b.Trace[0].Frame.IsDashes() {
		t.Fatal("boot with Shield held did not show dashes first")
	}
	want := concat([]int{30, 31, 32, 33, 34, 35, 10}, countdown(10), []int{35}, countdown(34), []int{0})
	if got := b.Numbers(); !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	if h, _ := b.Store.Get(cfg.HealthSlot); h != 35 {
		t.Fatalf("saved health = %d, want 35", h)
	}
	if sh, _ := b.Store.Get(cfg.ShieldSlot); sh != 10 {
		t.Fatalf("saved shields = %d, want 10", sh)
	}

	wantPhases := []game.Phase{
		game.PhaseBoot, game.PhaseAdvancedSetup, game.PhaseCountdown,
		game.PhaseActive, game.PhaseDepleted, game.PhasePoweredDown,
	}
	if !slices.Equal(phases, wantPhases) {
		t.Fatalf("phases %v, want %v", phases, wantPhases)
	}
}

func TestSequencer_AdvancedEntryWraps(t *testing.T) {
	cfg := config.Default()
	store := dev.NewMemStore(64)
	_ = store.Set(cfg.HealthSlot, 98)
	_ = store.Set(cfg.ShieldSlot, 20)
	b, seq := newGame(t, store)

	b.Shield.Press(0, 500*time.Millisecond)
	for i := 0; i < 3; i++ {
		b.Fire.Press(s+time.Duration(i)*300*time.Millisecond, 100*time.Millisecond)
	}
	b.Shield.Press(3*s, 200*time.Millisecond)
	b.Shield.Press(4*s, 200*time.Millisecond)
	hits(b, 20*s, 2)

	seq.Run()

	if got := b.Numbers()[:5]; !slices.Equal(got, []int{98, 99, 1, 2, 20}) {
		t.Fatalf("entry shown %v, want [98 99 1 2 20]", got)
	}
	if h, _ := store.Get(cfg.HealthSlot); h != 2 {
		t.Fatalf("saved health = %d, want 2", h)
	}
}

func TestSequencer_AdvancedAutoRepeat(t *testing.T) {
	cfg := config.Default()
	store := dev.NewMemStore(64)
	_ = store.Set(cfg.HealthSlot, 10)
	_ = store.Set(cfg.ShieldSlot, 10)
	b, seq := newGame(t, store)

	b.Shield.Press(0, 500*time.Millisecond)
	b.Fire.Press(s, 2*s)
	b.Shield.Press(4*s, 200*time.Millisecond)
	b.Shield.Press(5*s, 200*time.Millisecond)
	hits(b, 20*s, 30)

	seq.Run()

	h, _ := store.Get(cfg.HealthSlot)
	// one step on press, then ten more from the 1s hold mark to the release
	if h < 19 || h > 23 {
		t.Fatalf("saved health = %d, want about 21", h)
	}
	entry := b.Numbers()
	for i := 1; i < int(h)-10; i++ {
		if entry[i] != entry[i-1]+1 {
			t.Fatalf("entry skipped from %d to %d", entry[i-1], entry[i])
		}
	}
}

func TestSequencer_AdvancedEntryHasNoTimeout(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Shield.Press(0, 500*time.Millisecond)
	b.Shield.Press(300*s, 200*time.Millisecond)
	b.Shield.Press(301*s, 200*time.Millisecond)
	hits(b, 400*s, 30)

	seq.Run()

	want := concat([]int{30, 10}, countdown(10), []int{30}, countdown(29), []int{0})
	if got := b.Numbers(); !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	if at := assertHalted(t, b, seq); at < 429*s {
		t.Fatalf("halted at %v, before the game was played", at)
	}
}

func TestSequencer_CountdownWaitsForBeacon(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Beacon.Press(0, 5*s)
	b.Fire.Press(s, 200*time.Millisecond)
	hits(b, 30*s, 10)

	seq.Run()

	// Trace[0] is the setup frame, Trace[1] the first countdown frame.
	if at := b.Trace[1].At; at < 5*s || at > 5*s+100*time.Millisecond {
		t.Fatalf("countdown started at %v, want right after the beacon went dark", at)
	}
}

func TestSequencer_ShieldActivation(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Fire.Press(s, 200*time.Millisecond)
	b.Shield.Press(20*s, 3500*time.Millisecond)
	b.Beacon.Press(21*s, 300*time.Millisecond)
	b.Shield.Press(24600*time.Millisecond, 200*time.Millisecond)
	hits(b, 40*s, 10)

	seq.Run()

	got := b.Numbers()[12:]
	want := concat([]int{10, 15, 14, 13, 12, 11, 10}, countdown(9), []int{0})
	if !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	// four periods drained, plus one for dropping the shield early
	if st := seq.State(); st.Shields != 10 {
		t.Fatalf("shields = %d, want 10", st.Shields)
	}
}

func TestSequencer_ShieldStopsAtFloor(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Fire.Press(s, 200*time.Millisecond)
	b.Shield.Press(20*s, 15*s)
	// lands while Shield is still held after the floor: not observed
	b.Beacon.Press(33*s, 300*time.Millisecond)
	hits(b, 40*s, 10)

	seq.Run()

	got := b.Numbers()[12:]
	want := concat([]int{10}, countdown(15)[:11], []int{10}, countdown(9), []int{0})
	if !slices.Equal(got, want) {
		t.Fatalf("shown %v\nwant  %v", got, want)
	}
	if st := seq.State(); st.Shields != 5 {
		t.Fatalf("shields = %d, want the floor 5", st.Shields)
	}
}

func TestSequencer_DepletedIgnoresInput(t *testing.T) {
	b, seq := newGame(t, nil)
	b.Fire.Press(s, 200*time.Millisecond)
	hits(b, 20*s, 10)
	b.Shield.Press(40*s, 2*s)
	b.Fire.Press(45*s, 200*time.Millisecond)
	b.Beacon.Press(50*s, 200*time.Millisecond)

	seq.Run()

	got := b.Numbers()
	if tail := got[len(got)-2:]; !slices.Equal(tail, []int{0, 0}) {
		t.Fatalf("display after depletion %v", tail)
	}
	at := assertHalted(t, b, seq)
	if at < 89*s || at > 90*s {
		t.Fatalf("halted at %v, want 60s after depletion", at)
	}
}
