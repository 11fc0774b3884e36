// Package tone generates the square wave that is played while the sound
// timer is active.
package tone

// Default tone parameters.
const (
	DefaultSampleRate = 44100
	DefaultPitch      = 220
	DefaultVolume     = 0.25
)

// Square is a square wave generator that keeps its phase across calls so
// that consecutive frames join without clicks.
type Square struct {
	sampleRate int
	pitch      int
	volume     float64
	phase      float64 // position within the current period, in [0, 1)
}

// NewSquare returns a square wave generator. Non-positive sample rates or
// pitches are replaced by the defaults.
func NewSquare(sampleRate, pitch int, volume float64) *Square {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if pitch <= 0 {
		pitch = DefaultPitch
	}
	return &Square{
		sampleRate: sampleRate,
		pitch:      pitch,
		volume:     volume,
	}
}

// SampleRate returns the sample rate in Hz.
func (s *Square) SampleRate() int {
	return s.sampleRate
}

// SamplesPerFrame returns the number of samples that cover one frame at the
// given frame rate.
func (s *Square) SamplesPerFrame(fps int) int {
	if fps <= 0 {
		return 0
	}
	return s.sampleRate / fps
}

// Next returns the next sample in the range [-volume, volume].
func (s *Square) Next() float64 {
	v := s.volume
	if s.phase >= 0.5 {
		v = -v
	}
	s.phase += float64(s.pitch) / float64(s.sampleRate)
	if s.phase >= 1 {
		s.phase--
	}
	return v
}

// Fill writes the next len(samples) samples.
func (s *Square) Fill(samples []float64) {
	for i := range samples {
		samples[i] = s.Next()
	}
}

// Reset restarts the wave at the beginning of a period.
func (s *Square) Reset() {
	s.phase = 0
}
