package asset

import (
	"image"
	"image/jpeg"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ascii-read/render"
)

// ErrUnsupportedPixelFormat is returned for JPEGs that do not decode to 3-channel color
var ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

// ErrEmptyImage is returned when the source has no pixels
var ErrEmptyImage = errors.New("empty image")

// LoadJPEG decodes the file at path and downsamples it to a width x height color grid
func LoadJPEG(path string, width, height int) ([][]render.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	if err := checkPixelFormat(img); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	b := img.Bounds()
	slog.Debug("image decoded", "path", path, "src_w", b.Dx(), "src_h", b.Dy(), "dst_w", width, "dst_h", height)

	return Downsample(img, width, height)
}

// checkPixelFormat accepts only color JPEGs; grayscale and CMYK are rejected
func checkPixelFormat(img image.Image) error {
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA:
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedPixelFormat, "%T", img)
	}
}

// Downsample maps every source pixel onto the target grid, folding pixels that land in the
// same cell by repeated half-way blending, so later pixels weigh more
// Target cells no source pixel maps to (upscaling) take the sample nearest their center
func Downsample(img image.Image, width, height int) ([][]render.Color, error) {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return [][]render.Color{}, nil
	}

	colors := make([][]render.Color, height)
	filled := make([][]bool, height)
	for y := range colors {
		colors[y] = make([]render.Color, width)
		filled[y] = make([]bool, width)
	}

	for sy := 0; sy < srcH; sy++ {
		ty := height * sy / srcH
		for sx := 0; sx < srcW; sx++ {
			tx := width * sx / srcW
			c := pixelColor(img, b.Min.X+sx, b.Min.Y+sy)
			if !filled[ty][tx] {
				colors[ty][tx] = c
				filled[ty][tx] = true
				continue
			}
			colors[ty][tx] = colors[ty][tx].Shift(c, 0.5)
		}
	}

	for ty := 0; ty < height; ty++ {
		for tx := 0; tx < width; tx++ {
			if filled[ty][tx] {
				continue
			}
			// Sample center of the corresponding region
			sx := min((tx*srcW+srcW/2)/width, srcW-1)
			sy := min((ty*srcH+srcH/2)/height, srcH-1)
			colors[ty][tx] = pixelColor(img, b.Min.X+sx, b.Min.Y+sy)
		}
	}

	return colors, nil
}

// pixelColor converts to 8-bit straight alpha; fully transparent pixels are black
func pixelColor(img image.Image, x, y int) render.Color {
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return render.Color{}
	}
	return render.Color{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}
