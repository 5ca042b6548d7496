package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var audioFS fs.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	failed   map[string]bool
	context  *audio.Context
	fsys     fs.FS
}

// NewAudioLoader creates an audio loader reading from the asset filesystem
// set by LoadAssets.
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		failed:   make(map[string]bool),
		context:  ctx,
		fsys:     audioFS,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for a cached sound effect.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// decoded returns the PCM bytes of path. A file that failed once is not
// retried.
func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cachedBytes, ok := l.sfxCache[path]; ok {
		return cachedBytes, nil
	}
	if l.failed[path] {
		return nil, fmt.Errorf("audio file %s unavailable", path)
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("no audio filesystem for %s", path)
	}

	decoded, err := l.decode(path)
	if err != nil {
		l.failed[path] = true
		return nil, err
	}
	l.sfxCache[path] = decoded
	return decoded, nil
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
