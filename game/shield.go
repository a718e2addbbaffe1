package game

// handleShield runs one shield activation if Shield is pressed.
//
// Shields drain one point per ShieldPeriod while up, never below the activation
// floor. The shield stays up while held, and after a release until the next
// press. Dropping it before the floor costs one extra point.
//
// The final release wait also blocks hit detection: a player who keeps holding
// Shield after the deactivating press cannot be hit until they let go.
func (s *Sequencer) handleShield() {
	if !s.shield.Pressed() {
		return
	}
	st := &s.state
	st.anchor = s.board.Clock.Now()
	s.show(st.Shields)
	floor := ShieldFloor(st.Shields, s.cfg.ShieldCharge)
	s.log.Debug().Int("shields", st.Shields).Int("floor", floor).Msg("shield up")

	for st.Shields > floor && s.shield.Pressed() {
		s.drainShield(floor, true)
	}

	released := false
	for st.Shields > floor {
		if s.shield.Pressed() {
			if released {
				break
			}
		} else {
			released = true
			s.idle()
		}
		s.drainShield(floor, true)
	}

	s.drainShield(floor, false)
	s.shield.WaitRelease()
	s.show(st.Health)
	if st.Shields > floor {
		st.Shields--
	}
	s.log.Debug().Int("shields", st.Shields).Msg("shield down")
}

// drainShield charges the time elapsed since the anchor against the shields.
// With whole set, nothing happens until a full period has passed.
func (s *Sequencer) drainShield(floor int, whole bool) {
	period := s.cfg.Timing.ShieldPeriod
	if period <= 0 {
		return
	}
	now := s.board.Clock.Now()
	elapsed := now - s.state.anchor
	if whole && elapsed < period {
		return
	}
	s.state.Drain(int(elapsed/period), floor)
	s.state.anchor = now
	if whole {
		s.show(s.state.Shields)
	}
}
