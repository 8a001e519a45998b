// Package sound plays short sampled clips such as jump and death effects.
package sound

import "time"

// Sound is a loaded clip. Update must be called once per tick so counted and
// endless loops can restart the clip when it reaches its end.
type Sound interface {
	Play()
	Stop()
	// Restart stops the clip and rewinds it to the beginning.
	Restart()
	// Loop restarts the clip and repeats it until Stop.
	Loop()
	// LoopN restarts the clip and plays it n more times after the first pass.
	LoopN(n int)
	Finished() bool
	Update()
}

// LoopForever is the LoopN count of an endless loop.
const LoopForever = -1

// stream is the part of an audio player a SampledSound drives.
type stream interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	Position() time.Duration
}

// SampledSound plays a fully decoded clip.
type SampledSound struct {
	player   stream
	duration time.Duration

	looping   bool
	remaining int
	started   bool
}

func newSampledSound(p stream, duration time.Duration) *SampledSound {
	return &SampledSound{player: p, duration: duration}
}

func (s *SampledSound) Play() {
	s.started = true
	s.player.Play()
}

func (s *SampledSound) Stop() {
	s.looping = false
	s.remaining = 0
	s.player.Pause()
}

func (s *SampledSound) Restart() {
	s.Stop()
	s.started = false
	_ = s.player.Rewind()
}

func (s *SampledSound) Loop() {
	s.LoopN(LoopForever)
}

func (s *SampledSound) LoopN(n int) {
	s.Restart()
	s.looping = true
	s.remaining = n
	s.Play()
}

// Finished reports whether the clip has played to its end.
func (s *SampledSound) Finished() bool {
	if !s.started {
		return false
	}
	return !s.player.IsPlaying() && s.player.Position() >= s.duration
}

func (s *SampledSound) Duration() time.Duration {
	return s.duration
}

func (s *SampledSound) Update() {
	if !s.looping || s.player.IsPlaying() {
		return
	}
	if s.remaining == 0 {
		s.looping = false
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	_ = s.player.Rewind()
	s.player.Play()
}
