// Package overlay is the ebiten front end of the protractor: a transparent
// borderless window that captures clicks and draws the measured angle.
package overlay

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"protractor/geom"
	"protractor/internal/session"
	"protractor/internal/tone"
)

// Overlay holds the protractor state and implements ebiten.Game.
type Overlay struct {
	opts options

	sess   *session.Session
	frame  session.Frame
	fade   session.Fade
	guides bool

	// audio
	audioCtx *audio.Context
	tickPCM  []byte
}

// New creates an Overlay. The audio context is only created when sound is
// enabled, since ebiten allows a single one per process.
func New(opts ...Option) *Overlay {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ov := &Overlay{
		opts:   o,
		sess:   session.New(o.logger),
		fade:   session.Fade{From: 1, To: float64(o.opacity), Duration: o.fade},
		guides: o.guides,
	}
	if o.sound {
		ov.audioCtx = audio.NewContext(tone.SampleRate)
		ov.tickPCM = tone.Tick(tone.SampleRate, 40*time.Millisecond, 1400)
	}
	return ov
}

// Run opens the overlay window and blocks until it is closed.
func (ov *Overlay) Run() error {
	ebiten.SetWindowSize(ov.opts.width, ov.opts.height)
	ebiten.SetWindowTitle("Protractor")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)

	ov.opts.logger.Info("overlay starting", "width", ov.opts.width, "height", ov.opts.height, "radius", ov.opts.radius)
	err := ebiten.RunGameWithOptions(ov, &ebiten.RunGameOptions{ScreenTransparent: true})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (ov *Overlay) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ov.fade.Step(time.Second / time.Duration(tps))

	mx, my := ebiten.CursorPosition()
	cv, err := geom.FromNumbers(mx, my)
	if err != nil {
		return err
	}
	cursor := cv.Point()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ov.sess.Capture(cursor)
		ov.playTick()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		ov.sess.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		ov.guides = !ov.guides
		ov.opts.logger.Debug("guides toggled", "on", ov.guides)
	}
	// Escape is swallowed so a host application never sees it.
	if ov.opts.quitKey && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		ov.opts.logger.Info("overlay closing")
		return ebiten.Termination
	}

	ov.frame = ov.sess.Frame(cursor, ov.opts.radius, ov.guides)
	return nil
}

func (ov *Overlay) Draw(screen *ebiten.Image) {
	// The backdrop also makes the whole window accept mouse events.
	screen.Fill(color.RGBA{A: uint8(ov.fade.Value())})
	clearCapture(screen, ov.frame, ov.opts.radius)

	f := ov.frame
	drawGuide(screen, f.Cursor, screen.Bounds())
	if last, ok := ov.sess.Last(); ok {
		drawGuide(screen, last, screen.Bounds())
	}

	switch f.Stage {
	case session.HasBegin:
		drawCross(screen, f.Begin, 6, ov.opts.armColor)
	case session.HasCross, session.Complete:
		drawLine(screen, f.Cross, f.Begin, ov.opts.armColor)
		drawLine(screen, f.Cross, f.End, ov.opts.armColor)
		drawCross(screen, f.Cross, 6, ov.opts.armColor)
	}

	if f.Measured {
		m := f.Measurement
		drawArc(screen, f.Cross, f.Begin, m.Signed, ov.opts.radius*0.6, ov.opts.markerColor)
		if m.HasBisector {
			drawLine(screen, f.Cross, m.Bisector, ov.opts.markerColor)
			drawDot(screen, m.Bisector, 3, ov.opts.markerColor)
		}
	}
	if f.HasRotateGuide {
		drawLine(screen, f.Cross, f.RotateGuide, ov.opts.guideColor)
	}
	if f.HasSplitGuides {
		for _, g := range f.SplitGuides {
			drawLine(screen, f.Cross, g, ov.opts.guideColor)
		}
	}

	ebitenutil.DebugPrint(screen, session.Status(f))
}

func (ov *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ov.opts.width, ov.opts.height
}

func (ov *Overlay) playTick() {
	if ov.audioCtx == nil {
		return
	}
	// A new player per capture lets ticks overlap.
	pl := ov.audioCtx.NewPlayerFromBytes(ov.tickPCM)
	pl.Play()
}
