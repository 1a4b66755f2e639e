// Package energy implements time-based energy regeneration for gated players.
package energy

import (
	"errors"
	"math"

	"github.com/ZenRepublic/Clubhouse/internal/checked"
)

var (
	// ErrCalculation is returned when recharge arithmetic cannot be carried out.
	ErrCalculation = errors.New("energy calculation failed")
	// ErrOutOfEnergy is returned when spending more energy than available.
	ErrOutOfEnergy = errors.New("out of energy")
)

const secondsPerMinute = 60

// State is a player's energy level and the timestamp the next unit accrues from.
type State struct {
	Energy   uint8
	LastTick int64
}

// Config describes how energy regenerates. A nil RechargeMinutes disables regeneration.
type Config struct {
	RechargeMinutes *int64
	MaxEnergy       uint8
}

// Recharge advances s to now.
//
// Whole recharge intervals elapsed since LastTick are converted to energy units.
// Reaching the cap resets LastTick to now; otherwise LastTick advances by exactly
// the consumed intervals so the remainder carries toward the next unit.
func Recharge(s State, cfg Config, now int64) (State, error) {
	if cfg.RechargeMinutes == nil {
		return s, nil
	}
	minutes := *cfg.RechargeMinutes
	if minutes <= 0 {
		return State{}, ErrCalculation
	}
	secs, err := checked.Mul(uint64(minutes), secondsPerMinute)
	if err != nil || secs > math.MaxInt64 {
		return State{}, ErrCalculation
	}
	interval := int64(secs)

	if s.LastTick > now {
		return State{}, ErrCalculation
	}
	elapsed := now - s.LastTick
	if elapsed < 0 {
		// wrapped
		return State{}, ErrCalculation
	}

	units := elapsed / interval
	if uint64(s.Energy)+uint64(units) >= uint64(cfg.MaxEnergy) {
		return State{Energy: cfg.MaxEnergy, LastTick: now}, nil
	}

	// units < MaxEnergy here, so the product cannot overflow.
	return State{
		Energy:   s.Energy + uint8(units),
		LastTick: s.LastTick + units*interval,
	}, nil
}

// Spend removes n units, failing rather than clamping when energy is short.
func Spend(energy, n uint8) (uint8, error) {
	if n > energy {
		return energy, ErrOutOfEnergy
	}
	return energy - n, nil
}
