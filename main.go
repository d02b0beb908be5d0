package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"protractor/geom"
	"protractor/internal/screen"
	"protractor/overlay"
)

func main() {
	var (
		width   = flag.Int("width", 0, "overlay width in pixels (0: full screen)")
		height  = flag.Int("height", 0, "overlay height in pixels (0: full screen)")
		radius  = flag.Float64("radius", geom.DefaultMarkerRadius, "bisector marker distance from the vertex")
		opacity = flag.Uint("opacity", 127, "backdrop alpha, 0-255")
		mute    = flag.Bool("mute", false, "disable the capture tick")
		guides  = flag.Bool("guides", false, "show rotation and split check rays")
		debug   = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	geom.SetLogger(logger)

	opts := []overlay.Option{
		overlay.WithMarkerRadius(*radius),
		overlay.WithOpacity(uint8(min(*opacity, 255))),
		overlay.WithSound(!*mute),
		overlay.WithGuides(*guides),
		overlay.WithLogger(logger),
	}
	if w, h, ok := screen.Size(*width, *height, ebiten.ScreenSizeInFullscreen, logger); ok {
		opts = append(opts, overlay.WithSize(w, h))
	}

	ov := overlay.New(opts...)
	if err := ov.Run(); err != nil {
		logger.Error("overlay failed", "err", err)
		os.Exit(1)
	}
}
