package image

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter is the interpolation kernel used for resampling
type Filter = resize.InterpolationFunction

var filters = map[string]Filter{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// DefaultFilter matches the bilinear interpolation of classic imresize
const DefaultFilter = "bilinear"

// ParseFilter ...
func ParseFilter(name string) (Filter, error) {
	if name == "" {
		name = DefaultFilter
	}
	if f, ok := filters[strings.ToLower(name)]; ok {
		return f, nil
	}
	return resize.Bilinear, fmt.Errorf("%w: %q", ErrFilter, name)
}

// ResampleOption ...
type ResampleOption struct {
	Width, Height uint
	Mode          rune // ModeScale or ModeCrop
	Filter        Filter

	ctWidth, ctHeight uint // for crop temporary
	cropX, cropY      int
}

func (o ResampleOption) String() string {
	return fmt.Sprintf("%c%dx%d", o.Mode, o.Width, o.Height)
}

func (o *ResampleOption) calc(ow, oh uint) {
	ratioX := float64(o.Width) / float64(ow)
	ratioY := float64(o.Height) / float64(oh)
	ratio := math.Max(ratioX, ratioY)

	o.ctWidth = maxUint(o.Width, uint(math.Ceil(ratio*float64(ow))))
	o.ctHeight = maxUint(o.Height, uint(math.Ceil(ratio*float64(oh))))
	o.cropX = int(o.ctWidth-o.Width) / 2
	o.cropY = int(o.ctHeight-o.Height) / 2
}

// Resample returns img at exactly Width x Height. ModeScale stretches without
// keeping the aspect ratio, ModeCrop scales to cover and trims the centre.
// Smaller sources are scaled up.
func Resample(img image.Image, opt ResampleOption) (image.Image, error) {
	if opt.Width == 0 || opt.Height == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, opt)
	}
	ob := img.Bounds()
	if ob.Empty() {
		return nil, ErrEmptyImage
	}
	ow := uint(ob.Dx())
	oh := uint(ob.Dy())

	if opt.Mode == ModeCrop {
		opt.calc(ow, oh)
		buf := resize.Resize(opt.ctWidth, opt.ctHeight, img, opt.Filter)
		dst := image.NewRGBA(image.Rect(0, 0, int(opt.Width), int(opt.Height)))
		pt := buf.Bounds().Min.Add(image.Point{opt.cropX, opt.cropY})
		draw.Draw(dst, dst.Bounds(), buf, pt, draw.Src)
		return dst, nil
	}

	return resize.Resize(opt.Width, opt.Height, img, opt.Filter), nil
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
