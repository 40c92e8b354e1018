package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"png2lvgl"
	"png2lvgl/cgen"
	"png2lvgl/encode"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func options(c *cli.Context) (png2lvgl.Options, error) {
	opts := png2lvgl.Options{
		BigEndian: c.Bool("big-endian"),
		Quantize:  c.Bool("quantize"),
		Dither:    c.Bool("dither"),
		Overwrite: c.Bool("overwrite"),
	}

	if s := c.String("format"); s == "auto" {
		opts.Auto = true
	} else {
		f, err := encode.ParseFormat(s)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}

	v, err := cgen.ParseVersion(c.String("api"))
	if err != nil {
		return opts, err
	}
	opts.Version = v

	return opts, nil
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "png2lvgl"
	app.Usage = "Convert PNG images to LVGL C arrays"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			EnvVars: []string{"PNG2LVGL_FORMAT"},
			Value:   "auto",
			Usage:   "color format (auto, true-color, true-color-alpha, indexed1/2/4/8, alpha1/2/4/8)",
		},
		&cli.StringFlag{
			Name:    "api",
			EnvVars: []string{"PNG2LVGL_API"},
			Value:   "v8",
			Usage:   "LVGL API version tag vocabulary (v8 or v9)",
		},
		&cli.BoolFlag{
			Name:  "big-endian",
			Usage: "emit RGB565 words big-endian",
		},
		&cli.BoolFlag{
			Name:  "quantize",
			Usage: "reduce colors to fit an indexed palette instead of failing",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "apply Floyd-Steinberg dithering while quantizing",
		},
		&cli.BoolFlag{
			Name:  "overwrite",
			Usage: "overwrite existing output files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a single image to a C array source file",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output C file (defaults to input filename with .c extension)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p := png2lvgl.New(opts, newLogger(c))

				if err := p.ConvertFile(c.Args().First(), c.String("output")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Convert every image found under a directory",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p := png2lvgl.New(opts, newLogger(c))

				if err := p.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
