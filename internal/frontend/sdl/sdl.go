// Package sdl implements the windowed frontend on top of SDL2. It draws the
// display scaled into a window, maps the left keyboard block to the keypad
// and plays a square wave while the buzzer is active.
//
// SDL requires all calls to happen on the thread that initialized it, New
// therefore locks the calling goroutine to its OS thread.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/tone"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "retrochip8"

// Options configures the window and the buzzer.
type Options struct {
	Scale      int    // size of a pixel in screen pixels
	Foreground uint32 // ARGB8888 color of lit pixels
	Background uint32 // ARGB8888 color of unlit pixels
	Grid       bool   // draw a faint grid between pixels
	Pitch      int    // buzzer frequency in Hz
	FPS        int    // frames per second, sizes the queued audio
}

// SDL is the SDL2 frontend.
type SDL struct {
	opts     Options
	window   *sdl.Window
	renderer *sdl.Renderer
	rects    []sdl.Rect

	audio       sdl.AudioDeviceID
	silence     uint8
	wave        *tone.Square
	samples     []float64
	audioBuffer []byte
	sound       bool
}

// New opens the window and the audio device.
func New(opts Options) (*SDL, error) {
	runtime.LockOSThread()

	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	s := &SDL{
		opts:  opts,
		rects: make([]sdl.Rect, 0, machine.DisplayWidth*machine.DisplayHeight),
	}

	var err error
	s.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(machine.DisplayWidth*opts.Scale), int32(machine.DisplayHeight*opts.Scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = s.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	if err := s.openAudio(); err != nil {
		_ = s.renderer.Destroy()
		_ = s.window.Destroy()
		sdl.Quit()
		return nil, err
	}
	return s, nil
}

func (s *SDL) openAudio() error {
	s.wave = tone.NewSquare(tone.DefaultSampleRate, s.opts.Pitch, tone.DefaultVolume)
	s.samples = make([]float64, s.wave.SamplesPerFrame(s.opts.FPS))
	if len(s.samples) == 0 {
		s.samples = make([]float64, s.wave.SamplesPerFrame(60))
	}
	s.audioBuffer = make([]byte, len(s.samples))

	spec := &sdl.AudioSpec{
		Freq:     int32(s.wave.SampleRate()),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(len(s.samples)),
	}
	var actual sdl.AudioSpec

	var err error
	s.audio, err = sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	s.silence = actual.Silence

	sdl.PauseAudioDevice(s.audio, false)
	return nil
}

// PollInput processes all pending window events.
func (s *SDL) PollInput(keys *machine.Keypad) (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return true, nil
			}
			key, ok := keymap[e.Keysym.Sym]
			if !ok {
				continue
			}
			switch e.Type {
			case sdl.KEYDOWN:
				keys.Set(key, true)
			case sdl.KEYUP:
				keys.Set(key, false)
			}
		}
	}
	return false, nil
}

// Render draws all lit pixels as filled rectangles.
func (s *SDL) Render(display *machine.Display) error {
	s.rects = litRects(display, int32(s.opts.Scale), s.rects[:0])

	r, g, b, a := splitColor(s.opts.Background)
	if err := s.renderer.SetDrawColor(r, g, b, a); err != nil {
		return fmt.Errorf("setting background color: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}

	if len(s.rects) > 0 {
		r, g, b, a = splitColor(s.opts.Foreground)
		if err := s.renderer.SetDrawColor(r, g, b, a); err != nil {
			return fmt.Errorf("setting foreground color: %w", err)
		}
		if err := s.renderer.FillRects(s.rects); err != nil {
			return fmt.Errorf("drawing pixels: %w", err)
		}
	}

	if s.opts.Grid && s.opts.Scale > 1 {
		if err := s.drawGrid(); err != nil {
			return err
		}
	}

	s.renderer.Present()
	return nil
}

func (s *SDL) drawGrid() error {
	r, g, b, _ := splitColor(s.opts.Background)
	if err := s.renderer.SetDrawColor(r/2, g/2, b/2, 0xff); err != nil {
		return fmt.Errorf("setting grid color: %w", err)
	}

	scale := int32(s.opts.Scale)
	width := int32(machine.DisplayWidth) * scale
	height := int32(machine.DisplayHeight) * scale
	for x := int32(0); x <= width; x += scale {
		if err := s.renderer.DrawLine(x, 0, x, height); err != nil {
			return fmt.Errorf("drawing grid: %w", err)
		}
	}
	for y := int32(0); y <= height; y += scale {
		if err := s.renderer.DrawLine(0, y, width, y); err != nil {
			return fmt.Errorf("drawing grid: %w", err)
		}
	}
	return nil
}

// SetSound keeps about two frames of the square wave queued while the
// buzzer is active and drops the queue when it turns off.
func (s *SDL) SetSound(on bool) error {
	if !on {
		if s.sound {
			sdl.ClearQueuedAudio(s.audio)
			s.wave.Reset()
		}
		s.sound = false
		return nil
	}
	s.sound = true

	if sdl.GetQueuedAudioSize(s.audio) > uint32(2*len(s.audioBuffer)) {
		return nil
	}
	s.wave.Fill(s.samples)
	encodeU8(s.samples, s.silence, s.audioBuffer)
	if err := sdl.QueueAudio(s.audio, s.audioBuffer); err != nil {
		return fmt.Errorf("queueing audio: %w", err)
	}
	return nil
}

// Close releases the audio device and the window.
func (s *SDL) Close() error {
	sdl.CloseAudioDevice(s.audio)

	var firstErr error
	if err := s.renderer.Destroy(); err != nil {
		firstErr = fmt.Errorf("destroying renderer: %w", err)
	}
	if err := s.window.Destroy(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("destroying window: %w", err)
	}
	sdl.Quit()
	return firstErr
}
