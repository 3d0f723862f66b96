// Command shadowgen renders a window shadow texture to PNG.
//
// Shadow layers come from a preset in the YAML preset file (see package
// config) or from flags:
//
//	shadowgen -preset active -box 320x200 -output active.png
//	shadowgen -radius 24 -offset 0,6 -color '#00000080' -dpr 2
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/boxshadow"
	"github.com/gogpu/boxshadow/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "shadowgen:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath   string
	preset       string
	box          image.Point
	radius       int
	offset       image.Point
	color        string
	dpr          float64
	borderRadius float64
	passes       int
	output       string
	verbose      bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("shadowgen", flag.ContinueOnError)
	var (
		o      options
		box    = fs.String("box", "256x160", "box size WxH in logical pixels")
		offset = fs.String("offset", "0,0", "shadow offset X,Y (ignored with -preset)")
	)
	fs.StringVar(&o.configPath, "config", "", "preset file (default: $BOXSHADOW_CONFIG or XDG config dir)")
	fs.StringVar(&o.preset, "preset", "", "render the named preset instead of the flag-defined shadow")
	fs.IntVar(&o.radius, "radius", 24, "blur radius (ignored with -preset)")
	fs.StringVar(&o.color, "color", "#00000080", "shadow colour (ignored with -preset)")
	fs.Float64Var(&o.dpr, "dpr", 0, "device pixel ratio (default: from the preset file)")
	fs.Float64Var(&o.borderRadius, "border-radius", 0, "box corner radius (ignored with -preset)")
	fs.IntVar(&o.passes, "passes", 0, "box blur passes (default 3)")
	fs.StringVar(&o.output, "output", "shadow.png", "output file")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if o.box, err = parsePair(*box, "x"); err != nil {
		return nil, fmt.Errorf("-box: %w", err)
	}
	if o.offset, err = parsePair(*offset, ","); err != nil {
		return nil, fmt.Errorf("-offset: %w", err)
	}
	return &o, nil
}

var errPair = errors.New("expected two integers")

func parsePair(s, sep string) (image.Point, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return image.Point{}, fmt.Errorf("%w separated by %q, got %q", errPair, sep, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: %v", errPair, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: %v", errPair, err)
	}
	return image.Pt(x, y), nil
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	boxshadow.SetLogger(log)

	spec, err := buildSpec(o)
	if err != nil {
		return err
	}

	r := boxshadow.NewRenderer(
		boxshadow.WithBoxSize(spec.BoxSize),
		boxshadow.WithBorderRadius(spec.BorderRadius),
		boxshadow.WithDevicePixelRatio(spec.DevicePixelRatio),
		boxshadow.WithPasses(spec.Passes),
	)
	r.AddShadow(spec.Offset, spec.Radius, spec.Color)
	pm := r.Render()
	if pm.Empty() {
		return fmt.Errorf("nothing to render for box %v", spec.BoxSize)
	}

	if err := pm.SavePNG(o.output); err != nil {
		return fmt.Errorf("save %s: %w", o.output, err)
	}
	log.Info("shadow texture saved", "path", o.output,
		"width", pm.Width(), "height", pm.Height(), "radius", spec.Radius)
	return nil
}

// buildSpec resolves the shadow from the preset file or the flags.
func buildSpec(o *options) (boxshadow.ShadowSpec, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return boxshadow.ShadowSpec{}, err
	}

	dpr := cfg.DevicePixelRatio
	if o.dpr > 0 {
		dpr = o.dpr
	}

	if o.preset != "" {
		p, err := cfg.Preset(o.preset)
		if err != nil {
			return boxshadow.ShadowSpec{}, err
		}
		if o.passes != 0 {
			p.Passes = o.passes
		}
		return p.Spec(o.box, dpr)
	}

	c, err := boxshadow.ParseHex(o.color)
	if err != nil {
		return boxshadow.ShadowSpec{}, fmt.Errorf("-color: %w", err)
	}
	return boxshadow.ShadowSpec{
		BoxSize:          o.box,
		Offset:           o.offset,
		Radius:           o.radius,
		Color:            c,
		DevicePixelRatio: dpr,
		BorderRadius:     o.borderRadius,
		Passes:           o.passes,
	}, nil
}
