package overlay

import (
	"image/color"
	"log/slog"
	"time"

	"protractor/geom"
)

// Option configures an Overlay during creation.
//
// Example:
//
//	o := overlay.New(
//	    overlay.WithSize(1920, 1080),
//	    overlay.WithMarkerRadius(80),
//	    overlay.WithSound(false),
//	)
type Option func(*options)

// options holds the Overlay configuration.
type options struct {
	width, height int
	opacity       uint8 // backdrop alpha once faded in
	fade          time.Duration
	radius        float64
	sound         bool
	guides        bool
	quitKey       bool
	logger        *slog.Logger

	armColor    color.Color
	markerColor color.Color
	guideColor  color.Color
}

// defaultOptions returns the default overlay options.
func defaultOptions() options {
	return options{
		width:       1280,
		height:      800,
		opacity:     127,
		fade:        300 * time.Millisecond,
		radius:      geom.DefaultMarkerRadius,
		sound:       true,
		quitKey:     true,
		logger:      slog.New(slog.DiscardHandler),
		armColor:    color.RGBA{0xFF, 0xEE, 0xAA, 0xFF},
		markerColor: color.RGBA{0x66, 0xFF, 0x66, 0xFF},
		guideColor:  color.RGBA{0x66, 0x66, 0xFF, 0xC0},
	}
}

// WithSize sets the logical screen size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithOpacity sets the backdrop alpha reached after the fade-in.
func WithOpacity(alpha uint8) Option {
	return func(o *options) {
		o.opacity = alpha
	}
}

// WithFadeDuration sets how long the backdrop takes to fade in.
func WithFadeDuration(d time.Duration) Option {
	return func(o *options) {
		o.fade = d
	}
}

// WithMarkerRadius sets the distance between the vertex and the bisector
// marker. Non-positive values are ignored.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.radius = r
		}
	}
}

// WithSound enables or disables the capture tick.
func WithSound(on bool) Option {
	return func(o *options) {
		o.sound = on
	}
}

// WithGuides shows the rotation and split check rays from the start.
// G toggles them at runtime.
func WithGuides(on bool) Option {
	return func(o *options) {
		o.guides = on
	}
}

// WithQuitKey enables or disables quitting with Q.
func WithQuitKey(on bool) Option {
	return func(o *options) {
		o.quitKey = on
	}
}

// WithLogger sets the overlay logger. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
