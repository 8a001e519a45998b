package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// ErrNotLoaded is returned by Get for a clip that was never loaded.
var ErrNotLoaded = errors.New("sound: not loaded")

// Decoder turns the bytes of a file into a Sound.
type Decoder func(name string, data []byte) (Sound, error)

// Library loads clips from a file system and keeps them by path. Loading a
// path twice returns the same Sound.
type Library struct {
	fsys   fs.FS
	decode Decoder
	sounds map[string]Sound
	order  []string
}

// NewLibrary creates a library for ctx. WAV files are decoded; any other file
// is played as raw 16-bit stereo PCM at the context's sample rate.
func NewLibrary(fsys fs.FS, ctx *audio.Context) *Library {
	return NewLibraryWithDecoder(fsys, ContextDecoder(ctx))
}

func NewLibraryWithDecoder(fsys fs.FS, decode Decoder) *Library {
	return &Library{fsys: fsys, decode: decode, sounds: make(map[string]Sound)}
}

// Preload loads name, replacing nothing if it is already cached.
func (l *Library) Preload(name string) error {
	_, err := l.Load(name)
	return err
}

// Load returns the clip at name, decoding it on first use.
func (l *Library) Load(name string) (Sound, error) {
	key := path.Clean(name)
	if s, ok := l.sounds[key]; ok {
		return s, nil
	}
	data, err := fs.ReadFile(l.fsys, key)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", key, err)
	}
	s, err := l.decode(key, data)
	if err != nil {
		return nil, fmt.Errorf("sound: decode %s: %w", key, err)
	}
	l.sounds[key] = s
	l.order = append(l.order, key)
	return s, nil
}

// Get returns a clip loaded earlier.
func (l *Library) Get(name string) (Sound, error) {
	key := path.Clean(name)
	s, ok := l.sounds[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, key)
	}
	return s, nil
}

// Update advances every loaded clip.
func (l *Library) Update() {
	for _, key := range l.order {
		l.sounds[key].Update()
	}
}

// StopAll silences every loaded clip.
func (l *Library) StopAll() {
	for _, key := range l.order {
		l.sounds[key].Stop()
	}
}

// ContextDecoder decodes clips into players of ctx. WAV files are decoded
// and resampled; anything else is taken as raw 16-bit stereo PCM.
func ContextDecoder(ctx *audio.Context) Decoder {
	return func(name string, data []byte) (Sound, error) {
		pcm, err := decodePCM(ctx.SampleRate(), name, data)
		if err != nil {
			return nil, err
		}
		bytesPerSecond := int64(ctx.SampleRate()) * 4
		duration := time.Duration(int64(len(pcm)) * int64(time.Second) / bytesPerSecond)
		return newSampledSound(ctx.NewPlayerFromBytes(pcm), duration), nil
	}
}

func decodePCM(sampleRate int, name string, data []byte) ([]byte, error) {
	if strings.ToLower(path.Ext(name)) != ".wav" {
		return data, nil
	}
	s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}
