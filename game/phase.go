package game

type Phase uint8

const (
	PhaseBoot Phase = iota
	PhaseNormalSetup
	PhaseAdvancedSetup
	PhaseCountdown
	PhaseActive
	PhaseDepleted
	PhasePoweredDown
)

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseNormalSetup:
		return "normal-setup"
	case PhaseAdvancedSetup:
		return "advanced-setup"
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseDepleted:
		return "depleted"
	case PhasePoweredDown:
		return "powered-down"
	}
	return "unknown"
}
