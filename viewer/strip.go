package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// scrollTolerance absorbs rounding of the animated offset when deciding affordance visibility
	scrollTolerance = 1
	// scrollFraction of the viewport moved by one affordance press
	scrollFraction = 0.8

	springFrequency = 7.0
	springDamping   = 1.0
	settleDistance  = 0.25
)

// Strip is the horizontal scroll state of a strip list, measured in terminal cells
type Strip struct {
	position float64
	velocity float64
	target   float64

	viewport int
	content  int

	spring harmonica.Spring
}

// NewStrip creates a strip animated at the given frame rate
func NewStrip(fps int) Strip {
	return Strip{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

// Measure records the visible width and total content width and clamps the offset
func (s *Strip) Measure(viewport, content int) {
	s.viewport = max(0, viewport)
	s.content = max(0, content)

	limit := float64(s.maxOffset())
	s.target = clamp(s.target, 0, limit)
	s.position = clamp(s.position, 0, limit)
}

// Offset is the current left edge of the visible window
func (s Strip) Offset() int {
	return int(math.Round(s.position))
}

// Target is where the strip is scrolling to
func (s Strip) Target() int {
	return int(math.Round(s.target))
}

// Viewport is the visible width
func (s Strip) Viewport() int { return s.viewport }

// Content is the total width of all cards
func (s Strip) Content() int { return s.content }

// CanScrollLeft reports whether content is hidden on the left
func (s Strip) CanScrollLeft() bool {
	return s.position > scrollTolerance
}

// CanScrollRight reports whether content is hidden on the right
func (s Strip) CanScrollRight() bool {
	return s.position+float64(s.viewport) < float64(s.content)-scrollTolerance
}

// ScrollLeft moves the target left by most of a viewport
func (s *Strip) ScrollLeft() bool {
	return s.scrollTo(s.target - scrollFraction*float64(s.viewport))
}

// ScrollRight moves the target right by most of a viewport
func (s *Strip) ScrollRight() bool {
	return s.scrollTo(s.target + scrollFraction*float64(s.viewport))
}

// Reveal moves the target just enough to show the span [start, end)
func (s *Strip) Reveal(start, end int) bool {
	switch {
	case float64(start) < s.target:
		return s.scrollTo(float64(start))
	case float64(end) > s.target+float64(s.viewport):
		return s.scrollTo(float64(end - s.viewport))
	}
	return false
}

// Animating reports whether the strip has not yet settled on its target
func (s Strip) Animating() bool {
	return math.Abs(s.target-s.position) > settleDistance || math.Abs(s.velocity) > settleDistance
}

// Step advances the spring by one frame
func (s *Strip) Step() {
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	if !s.Animating() {
		s.position = s.target
		s.velocity = 0
	}
}

// Jump moves to the target immediately
func (s *Strip) Jump() {
	s.position = s.target
	s.velocity = 0
}

func (s *Strip) scrollTo(target float64) bool {
	target = clamp(target, 0, float64(s.maxOffset()))
	if target == s.target {
		return false
	}
	s.target = target
	return true
}

func (s Strip) maxOffset() int {
	return max(0, s.content-s.viewport)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
