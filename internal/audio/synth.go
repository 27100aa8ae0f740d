package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/carrot-field/internal/core"
)

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveTriangle
	waveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator creates a finite oscillator.
func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := waveAt(o.wave, o.phase, o.rng)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveAt(w waveType, phase float64, rng *rand.Rand) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case waveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// newEnvelope shapes s with attack/release over duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero is
// mapped to a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// carrotPull is a short rising pluck.
func carrotPull(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(noteE5, 40*time.Millisecond, waveTriangle, rate),
		tone(noteC6, 70*time.Millisecond, waveTriangle, rate),
	)
}

// bugPull is a falling buzz over a noise crunch.
func bugPull(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return beep.Mix(
		newVolume(beep.Seq(
			tone(noteA4/2, d/2, waveSquare, rate),
			tone(noteE4/2, d/2, waveSquare, rate),
		), 0.5),
		newVolume(newEnvelope(newOscillator(0, d/3, waveNoise, rate), d/3, 0, d/3, rate), 0.3),
	)
}

// win is an ascending major arpeggio.
func win(rate beep.SampleRate) beep.Streamer {
	step := 110 * time.Millisecond
	return beep.Seq(
		tone(noteC5, step, waveSquare, rate),
		tone(noteE5, step, waveSquare, rate),
		tone(noteG5, step, waveSquare, rate),
		tone(noteC6, 3*step, waveSquare, rate),
	)
}

// alert is two short beeps.
func alert(rate beep.SampleRate) beep.Streamer {
	beepLen := 90 * time.Millisecond
	return beep.Seq(
		tone(noteA4*2, beepLen, waveSine, rate),
		beep.Silence(rate.N(60*time.Millisecond)),
		tone(noteA4*2, beepLen, waveSine, rate),
	)
}

// backgroundMelody loops a soft pentatonic phrase forever.
type backgroundMelody struct {
	rate     beep.SampleRate
	notes    []float64
	noteLen  int
	position int
	phase    float64
}

func newBackgroundMelody(rate beep.SampleRate) *backgroundMelody {
	return &backgroundMelody{
		rate:    rate,
		notes:   []float64{noteC4, noteE4, noteG4, noteA4, noteG4, noteE4, noteD5 / 2, noteE4},
		noteLen: core.Max(rate.N(250*time.Millisecond), 1),
	}
}

func (b *backgroundMelody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (b.position / b.noteLen) % len(b.notes)
		inNote := b.position % b.noteLen
		if inNote == 0 {
			b.phase = 0
		}
		decay := math.Exp(-4 * float64(inNote) / float64(b.noteLen))
		val := 0.25 * decay * math.Sin(2*math.Pi*b.phase)
		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.notes[idx] / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *backgroundMelody) Err() error { return nil }

// Streamer returns a fresh stream for the cue, scaled to volume.
// The background stream never ends; every other cue is finite.
func Streamer(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundBackground:
		st = newBackgroundMelody(rate)
	case core.SoundCarrotPull:
		st = carrotPull(rate)
	case core.SoundBugPull:
		st = bugPull(rate)
	case core.SoundWin:
		st = win(rate)
	case core.SoundAlert:
		st = alert(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
