// Package sound plays background music and combat effects
package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
	"ebiten-dungeon/systems"
)

const sampleRate = 44100

// ErrUnsupportedFormat is returned for files that are not mp3, ogg or wav
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// AudioSystem handles all audio playback
type AudioSystem struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmStream    io.ReadSeeker
	bgmPath      string
	hit          []byte // Decoded PCM of the hit effect
	volume       float64
}

// NewAudioSystem creates the audio context. Only one may exist per process.
func NewAudioSystem(cfg config.AudioConfig) *AudioSystem {
	s := &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		volume:       cfg.Volume,
		bgmPath:      cfg.Music,
	}
	if cfg.Hit != "" {
		if err := s.LoadHit(cfg.Hit); err != nil {
			logger.System("audio").WithError(err).Warn("hit sound disabled")
		}
	}
	return s
}

// Initialize subscribes the hit effect to landed attacks
func (s *AudioSystem) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(systems.EventCombat, func(ecs.Event) {
		s.PlayHit()
	})
}

func decode(path string) (io.ReadSeeker, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	var stream io.ReadSeeker
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, file)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, file)
	default:
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("decode audio file: %w", err)
	}
	return stream, nil
}

// LoadHit decodes the effect played when an attack lands
func (s *AudioSystem) LoadHit(path string) error {
	stream, err := decode(path)
	if err != nil {
		return err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read audio file: %w", err)
	}
	s.hit = pcm
	return nil
}

// PlayHit plays the hit effect if one is loaded
func (s *AudioSystem) PlayHit() {
	if len(s.hit) == 0 {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(s.hit)
	player.SetVolume(s.volume)
	player.Play()
}

// PlayBGM starts looping the configured background music
func (s *AudioSystem) PlayBGM() error {
	if s.bgmPath == "" {
		return nil
	}
	s.StopBGM()

	stream, err := decode(s.bgmPath)
	if err != nil {
		return err
	}
	length := int64(0)
	if sized, ok := stream.(interface{ Length() int64 }); ok {
		length = sized.Length()
	}
	if length > 0 {
		stream = audio.NewInfiniteLoop(stream, length)
	}

	player, err := s.audioContext.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("create audio player: %w", err)
	}
	s.bgmStream = stream
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if closer, ok := s.bgmStream.(io.Closer); ok {
		closer.Close()
	}
	s.bgmStream = nil
}

// IsBGMPlaying returns whether background music is currently playing
func (s *AudioSystem) IsBGMPlaying() bool {
	return s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

// SetVolume sets the volume for all sounds (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
	if s.bgmPlayer != nil {
		s.bgmPlayer.SetVolume(volume)
	}
}

// Close stops playback
func (s *AudioSystem) Close() {
	s.StopBGM()
}
