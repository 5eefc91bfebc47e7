package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams describes a damped spring the way CSS/JS animation libraries
// do. It is converted to harmonica's angular frequency and damping ratio.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Coefficients returns harmonica's angular frequency and damping ratio.
func (p SpringParams) Coefficients() (frequency, ratio float64) {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	if p.Stiffness <= 0 {
		return 0, 1
	}
	frequency = math.Sqrt(p.Stiffness / mass)
	ratio = p.Damping / (2 * math.Sqrt(p.Stiffness*mass))
	return frequency, ratio
}

// Spring is a single value chasing a target at a fixed frame rate.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepping at fps frames per second.
func NewSpring(fps int, p SpringParams) Spring {
	if fps <= 0 {
		fps = 60
	}
	frequency, ratio := p.Coefficients()
	return Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, ratio)}
}

// Step advances one frame toward target and returns the new position.
func (s *Spring) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Position returns the current value.
func (s *Spring) Position() float64 { return s.pos }

// Jump moves the spring to pos and stops it.
func (s *Spring) Jump(pos float64) {
	s.pos = pos
	s.vel = 0
}
