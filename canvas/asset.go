package canvas

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"softcanvas/rgba"
)

// Decoder turns a file path into raw pixels, 4 bytes per pixel in red,
// green, blue, alpha order.
type Decoder func(path string) (pix []uint8, width, height int, err error)

// Asset is a lazily loaded image cache entry: either just a path, or a
// path plus decoded pixels. Transitions return a new Asset value instead
// of mutating in place.
type Asset struct {
	path   string
	pix    []rgba.Color
	width  int
	height int
}

// NewAsset returns an unloaded Asset for path.
func NewAsset(path string) Asset {
	return Asset{path: path}
}

func (a Asset) Path() string { return a.path }

// Loaded reports whether decoded pixels are present.
func (a Asset) Loaded() bool { return a.pix != nil }

// Load decodes the asset's file through dec. A decode failure is returned
// unchanged and the asset stays unloaded, so the caller may retry later.
// Loading an already loaded asset is a no-op success.
func (a Asset) Load(dec Decoder) (Asset, error) {
	if a.Loaded() {
		return a, nil
	}

	raw, width, height, err := dec(a.path)
	if err != nil {
		return a, err
	}

	pix := make([]rgba.Color, len(raw)/4)
	for i := range pix {
		pix[i] = rgba.New(raw[i*4], raw[i*4+1], raw[i*4+2], raw[i*4+3])
	}

	return Asset{path: a.path, pix: pix, width: width, height: height}, nil
}

// Unload discards any decoded pixels, keeping only the path.
func (a Asset) Unload() Asset {
	return Asset{path: a.path}
}

// ToImage consumes the asset into an owned Image. Reports false when the
// asset is unloaded.
func (a Asset) ToImage() (*Image, bool) {
	if !a.Loaded() {
		return nil, false
	}
	return NewImage(a.pix, a.width, a.height), true
}

// Ref yields a borrowed pixel view tied to the asset's storage. Reports
// false when the asset is unloaded.
func (a Asset) Ref() (ImageRef, bool) {
	if !a.Loaded() {
		return ImageRef{}, false
	}
	return ImageRef{pix: a.pix, width: a.width, height: a.height}, true
}

// DecodeFile is the production Decoder: any format registered with
// image.Decode (png/gif/jpeg plus bmp, tiff, vp8l and webp from
// golang.org/x/image), normalized to 8-bit RGBA.
func DecodeFile(path string) ([]uint8, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return nrgba.Pix, bounds.Dx(), bounds.Dy(), nil
}
