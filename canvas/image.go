package canvas

import (
	"image"
	"image/color"

	"softcanvas/rgba"
)

// ColorSource exposes a read-only full-color pixel sequence, row-major,
// plus the dimensions used to map it onto surface coordinates. The
// declared width drives the coordinate mapping; the slice length bounds
// iteration, so the two need not agree exactly.
type ColorSource interface {
	Pixels() []rgba.Color
	Width() int
	Height() int
}

// MonoSource is the single-channel counterpart of ColorSource, one
// grayscale byte per pixel.
type MonoSource interface {
	Gray() []uint8
	Width() int
	Height() int
}

var (
	_ ColorSource = &Image{}
	_ ColorSource = ImageRef{}
	_ MonoSource  = &MonoImage{}
)

// Image is an owned full-color pixel array with its dimensions.
type Image struct {
	pix    []rgba.Color
	width  int
	height int
}

func NewImage(pix []rgba.Color, width, height int) *Image {
	return &Image{pix: pix, width: width, height: height}
}

func (m *Image) Pixels() []rgba.Color { return m.pix }
func (m *Image) Width() int           { return m.width }
func (m *Image) Height() int          { return m.height }

// Ref returns a borrowed view sharing the image's pixel storage.
func (m *Image) Ref() ImageRef {
	return ImageRef{pix: m.pix, width: m.width, height: m.height}
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	i := y*m.width + x
	if x < 0 || x >= m.width || y < 0 || i >= len(m.pix) {
		return rgba.Color(0)
	}
	return m.pix[i]
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return rgba.Model
}

// ImageRef is a borrowed read-only view of an image's pixels. It shares
// storage with its origin and must not outlive it.
type ImageRef struct {
	pix    []rgba.Color
	width  int
	height int
}

func (r ImageRef) Pixels() []rgba.Color { return r.pix }
func (r ImageRef) Width() int           { return r.width }
func (r ImageRef) Height() int          { return r.height }

// MonoImage is an owned grayscale byte array with its dimensions.
type MonoImage struct {
	gray   []uint8
	width  int
	height int
}

func NewMonoImage(gray []uint8, width, height int) *MonoImage {
	return &MonoImage{gray: gray, width: width, height: height}
}

func (m *MonoImage) Gray() []uint8 { return m.gray }
func (m *MonoImage) Width() int    { return m.width }
func (m *MonoImage) Height() int   { return m.height }

// FromImage converts a decoded image.Image into an owned Image.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make([]rgba.Color, 0, width*height)
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pix = append(pix, rgba.Model.Convert(c).(rgba.Color))
		}
	}

	return NewImage(pix, width, height)
}

// MonoFromImage converts a decoded image.Image into a grayscale
// MonoImage, one luminance byte per pixel.
func MonoFromImage(img image.Image) *MonoImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	gray := make([]uint8, 0, width*height)
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			gray = append(gray, color.GrayModel.Convert(c).(color.Gray).Y)
		}
	}

	return NewMonoImage(gray, width, height)
}
