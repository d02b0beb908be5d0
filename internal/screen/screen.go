// Package screen decides how large the overlay window is.
package screen

import "log/slog"

// Size returns the overlay size. A positive width and height are used as
// given. Otherwise query is asked for the desktop size, as
// ebiten.ScreenSizeInFullscreen does. Some platforms report 0x0 before the
// game loop starts; ok is then false and the caller keeps its default size.
func Size(width, height int, query func() (int, int), logger *slog.Logger) (w, h int, ok bool) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if width > 0 && height > 0 {
		return width, height, true
	}
	w, h = query()
	if w <= 0 || h <= 0 {
		logger.Warn("screen size unavailable, using default overlay size",
			"requested_width", width, "requested_height", height,
			"screen_width", w, "screen_height", h)
		return 0, 0, false
	}
	logger.Debug("overlay covers screen", "width", w, "height", h)
	return w, h, true
}
