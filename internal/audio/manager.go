package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/carrot-field/internal/config"
	"github.com/vovakirdan/carrot-field/internal/core"
)

// sink is the output device the manager feeds.
type sink interface {
	Play(s beep.Streamer)
	// Do runs f while the device is not pulling samples.
	Do(f func())
	Close()
}

type speakerSink struct{}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }

func (speakerSink) Do(f func()) {
	speaker.Lock()
	defer speaker.Unlock()
	f()
}

func (speakerSink) Close() {
	speaker.Clear()
	speaker.Close()
}

// Manager plays cues on the system speaker.
type Manager struct {
	mu         sync.Mutex
	out        sink
	rate       beep.SampleRate
	volume     float64
	background *beep.Ctrl
	closed     bool
	log        *log.Logger
}

// New returns a Player for cfg. It falls back to Silent when audio is
// disabled or the speaker cannot be opened.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Silent{}
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, running silent", "error", err)
		return Silent{}
	}

	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return newManager(speakerSink{}, rate, cfg.Volume, logger)
}

func newManager(out sink, rate beep.SampleRate, volume float64, logger *log.Logger) *Manager {
	return &Manager{
		out:    out,
		rate:   rate,
		volume: volume,
		log:    logger,
	}
}

// Play starts a cue.
func (m *Manager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	if s == core.SoundBackground {
		// Already looping
		if m.background != nil {
			return
		}
		ctrl := &beep.Ctrl{Streamer: Streamer(s, m.rate, m.volume)}
		m.background = ctrl
		m.out.Play(ctrl)
		m.log.Debug("sound start", "sound", s)
		return
	}

	st := Streamer(s, m.rate, m.volume)
	if st == nil {
		m.log.Warn("unknown sound", "sound", s)
		return
	}
	m.out.Play(st)
	m.log.Debug("sound play", "sound", s)
}

// Stop silences the background loop.
func (m *Manager) Stop(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s != core.SoundBackground || m.background == nil {
		return
	}

	// A Ctrl without a streamer is drained and dropped by the speaker.
	ctrl := m.background
	m.out.Do(func() {
		ctrl.Streamer = nil
	})
	m.background = nil
	m.log.Debug("sound stop", "sound", s)
}

// Close stops every sound and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.background = nil
	m.out.Close()
}

var _ Player = (*Manager)(nil)
