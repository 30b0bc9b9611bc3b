// Package compose implements the compose subcommand: it places every
// image found in a source folder onto a software canvas (background fill,
// optional border, optional duotone recoloring) and re-encodes the result.
package compose

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"softcanvas/canvas"
	"softcanvas/parallel"
	"softcanvas/rgba"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan        string `help:"Source folder to scan" default:"."`
	Dest        string `help:"Destination folder for composed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"composed"`
	Width       int    `help:"Canvas width. Defaults to each source image's own width." group:"canvas"`
	Height      int    `help:"Canvas height. Defaults to each source image's own height." group:"canvas"`
	Background  string `help:"Background color as RRGGBB or RRGGBBAA hex" default:"000000" group:"canvas"`
	Border      int    `help:"Border thickness in pixels drawn along the canvas edges" group:"canvas"`
	BorderColor string `help:"Border color as RRGGBB or RRGGBBAA hex" default:"FFFFFF" group:"canvas"`
	AtX         int    `help:"Horizontal position of the image on the canvas" group:"placement"`
	AtY         int    `help:"Vertical position of the image on the canvas" group:"placement"`
	Duotone     bool   `help:"Read sources as grayscale and recolor between --black and --white" default:"false" group:"duotone"`
	Black       string `help:"Color for fully black source pixels as RRGGBB or RRGGBBAA hex" default:"000000" group:"duotone"`
	White       string `help:"Color for fully white source pixels as RRGGBB or RRGGBBAA hex" default:"FFFFFF" group:"duotone"`
	Format      string `help:"Output format of composed images" enum:"png,gif,jpeg,bmp,tiff" default:"png"`

	background  rgba.Color
	borderColor rgba.Color
	black       rgba.Color
	white       rgba.Color
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid canvas height: %d", c.Height)
	case c.Border < 0:
		return fmt.Errorf("invalid border thickness: %d", c.Border)
	}

	if c.background, err = rgba.Parse(c.Background); err != nil {
		return fmt.Errorf("invalid background color %q: %w", c.Background, err)
	}
	if c.borderColor, err = rgba.Parse(c.BorderColor); err != nil {
		return fmt.Errorf("invalid border color %q: %w", c.BorderColor, err)
	}
	if c.black, err = rgba.Parse(c.Black); err != nil {
		return fmt.Errorf("invalid duotone black color %q: %w", c.Black, err)
	}
	if c.white, err = rgba.Parse(c.White); err != nil {
		return fmt.Errorf("invalid duotone white color %q: %w", c.White, err)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, clippedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		pool.Do(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				clipped, err := c.composeFile(logger, filePath, fileName)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not compose image", "error", err)
					return
				}
				if clipped {
					clippedCount.Add(1)
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "clipped", clippedCount.Load(),
		"errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

// composeFile renders one source file onto a fresh canvas and saves the
// result. Reports whether the placed image was clipped by the canvas.
func (c *CLICmd) composeFile(logger *slog.Logger, filePath, fileName string) (clipped bool, err error) {
	asset, err := canvas.NewAsset(filePath).Load(canvas.DecodeFile)
	if err != nil {
		return false, err
	}
	src, _ := asset.ToImage()

	width, height := c.Width, c.Height
	if width == 0 {
		width = src.Width()
	}
	if height == 0 {
		height = src.Height()
	}

	surf, err := canvas.New(make([]uint32, width*height), width, height)
	if err != nil {
		return false, err
	}
	surf.Fill(c.background)

	if c.Duotone {
		comp := surf.DrawMonochromeImage(c.AtX, c.AtY, canvas.MonoFromImage(src), c.black, c.white)
		switch comp {
		case canvas.CompletionNone:
			logger.Warn("image placed entirely off canvas", "x", c.AtX, "y", c.AtY)
		case canvas.CompletionPartial:
			logger.Info("image clipped by canvas", "completion", comp)
		}
		clipped = comp != canvas.CompletionComplete
	} else {
		surf.DrawImage(c.AtX, c.AtY, src)
		clipped = c.AtX < 0 || c.AtY < 0 ||
			c.AtX+src.Width() > width || c.AtY+src.Height() > height
	}

	if c.Border > 0 {
		c.drawBorder(surf)
	}

	out := toNRGBA(surf.Destroy(), width, height)
	if err := save(out, c.Format, c.Dest, fileName); err != nil {
		return clipped, err
	}
	return clipped, nil
}

// drawBorder frames the canvas edges with four filled rectangles.
func (c *CLICmd) drawBorder(surf *canvas.Surface) {
	w, h := surf.Width(), surf.Height()
	surf.DrawRectangle(0, 0, w, c.Border, c.borderColor)
	surf.DrawRectangle(0, h-c.Border, w, c.Border, c.borderColor)
	surf.DrawRectangle(0, 0, c.Border, h, c.borderColor)
	surf.DrawRectangle(w-c.Border, 0, c.Border, h, c.borderColor)
}

// toNRGBA unpacks the surface buffer into an encodable image.
func toNRGBA(buf []uint32, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, v := range buf {
		c := rgba.FromUint32(v)
		out.Pix[i*4+0] = c.At(rgba.ChanRed)
		out.Pix[i*4+1] = c.At(rgba.ChanGreen)
		out.Pix[i*4+2] = c.At(rgba.ChanBlue)
		out.Pix[i*4+3] = c.At(rgba.ChanAlpha)
	}
	return out
}
