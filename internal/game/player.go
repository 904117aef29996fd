package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/marquee/internal/audio"
)

// player plays one track at a time for the now-playing row. Every method
// runs on the frame loop; the speaker goroutine only signals on ended.
type player struct {
	logger *slog.Logger

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *audio.Tap
	length      time.Duration
	path        string

	gen      int
	ended    chan int
	paused   bool
	initDone bool
}

func newPlayer(logger *slog.Logger) *player {
	return &player{
		logger: logger,
		ended:  make(chan int, 1),
	}
}

// choose asks the user for a file. An empty path means the dialog was cancelled.
func (p *player) choose() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// load replaces whatever is playing with path.
func (p *player) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		p.initDone = true
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.release()

	p.gen++
	gen := p.gen
	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.tap = audio.NewTap(streamer, format.SampleRate)
	p.ctrl = &beep.Ctrl{Streamer: p.tap}
	p.paused = false
	p.path = path
	p.length = format.SampleRate.D(streamer.Len())

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		select {
		case p.ended <- gen:
		default:
		}
	})))

	p.logger.Info("player: playing", "path", path, "length", p.length)
	return nil
}

// poll reports whether the current track ended since the last call.
func (p *player) poll() bool {
	select {
	case gen := <-p.ended:
		if gen != p.gen || p.streamer == nil {
			return false
		}
		p.logger.Info("player: track ended", "path", p.path)
		p.release()
		return true
	default:
		return false
	}
}

func (p *player) togglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *player) playing() bool { return p.streamer != nil }

func (p *player) position() time.Duration {
	if p.tap == nil {
		return 0
	}
	return p.tap.Position()
}

func (p *player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.length = 0
	p.paused = false
}

func (p *player) close() {
	if !p.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.release()
	speaker.Close()
}
