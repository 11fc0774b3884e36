// Package wavwriter records the buzzer output of a run into a WAV file.
package wavwriter

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/tone"
)

const (
	bitDepth     = 16
	channels     = 1
	formatPCM    = 1
	maxAmplitude = math.MaxInt16
)

var errClosed = errors.New("wav writer is closed")

// Writer collects one frame of samples per SetSound call and encodes them
// as 16 bit mono PCM when closed.
type Writer struct {
	path   string
	fps    int
	wave   *tone.Square
	frame  []float64
	data   []int
	closed bool
}

// New returns a writer that creates the file at path on Close. Each sound
// update covers 1/fps seconds of audio.
func New(path string, fps, pitch int) *Writer {
	wave := tone.NewSquare(tone.DefaultSampleRate, pitch, tone.DefaultVolume)
	return &Writer{
		path:  path,
		fps:   fps,
		wave:  wave,
		frame: make([]float64, wave.SamplesPerFrame(fps)),
	}
}

// SetSound appends one frame of tone or silence.
func (w *Writer) SetSound(on bool) error {
	if w.closed {
		return errClosed
	}

	if !on {
		w.wave.Reset()
		w.data = append(w.data, make([]int, len(w.frame))...)
		return nil
	}

	w.wave.Fill(w.frame)
	for _, sample := range w.frame {
		w.data = append(w.data, int(sample*maxAmplitude))
	}
	return nil
}

// Samples returns the number of recorded samples.
func (w *Writer) Samples() int {
	return len(w.data)
}

// Close encodes all recorded samples into the output file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", w.path, err)
	}

	sampleRate := w.wave.SampleRate()
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, formatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           w.data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finishing wav encoding: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", w.path, err)
	}
	return nil
}
