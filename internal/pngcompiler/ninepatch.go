package pngcompiler

import (
	"fmt"
	"image"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// Range is an inclusive, content-relative pixel range: one stretchable
// or content (padding) run along one axis.
type Range struct{ Start, End int }

// NinePatch is the metadata a 9-patch border encodes (spec.md GLOSSARY):
// stretchable regions along each axis, and the content padding box.
type NinePatch struct {
	XDivs                               []Range
	YDivs                               []Range
	PaddingLeft, PaddingTop             int
	PaddingRight, PaddingBottom         int
}

func black(r, g, b, a uint32) bool {
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

// BuildNinePatch reads the 1-pixel border of img (which must be at least
// 3x3) and returns its NinePatch metadata (spec.md §4.5 step 4). A top
// or left border with no opaque-black pixel is a failure; any border
// pixel that is not opaque black counts as unmarked, and other colours
// are not rejected.
func BuildNinePatch(img *image.NRGBA) (*NinePatch, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return nil, cerrors.New(cerrors.KindPNG, "build nine patch",
			fmt.Errorf("image too small for a 9-patch border: %dx%d", w, h))
	}

	xDivs, err := scanAxis(w-2, func(i int) bool {
		r, g, bl, a := img.At(b.Min.X+1+i, b.Min.Y).RGBA()
		return black(r, g, bl, a)
	})
	if err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "build nine patch", fmt.Errorf("top border (x-stretch): %w", err))
	}
	yDivs, err := scanAxis(h-2, func(i int) bool {
		r, g, bl, a := img.At(b.Min.X, b.Min.Y+1+i).RGBA()
		return black(r, g, bl, a)
	})
	if err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "build nine patch", fmt.Errorf("left border (y-stretch): %w", err))
	}

	padLeft, padRight, err := scanPadding(w-2, func(i int) bool {
		r, g, bl, a := img.At(b.Min.X+1+i, b.Min.Y+h-1).RGBA()
		return black(r, g, bl, a)
	})
	if err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "build nine patch", fmt.Errorf("bottom border (padding): %w", err))
	}
	padTop, padBottom, err := scanPadding(h-2, func(i int) bool {
		r, g, bl, a := img.At(b.Min.X+w-1, b.Min.Y+1+i).RGBA()
		return black(r, g, bl, a)
	})
	if err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "build nine patch", fmt.Errorf("right border (padding): %w", err))
	}

	return &NinePatch{
		XDivs: xDivs, YDivs: yDivs,
		PaddingLeft: padLeft, PaddingRight: padRight,
		PaddingTop: padTop, PaddingBottom: padBottom,
	}, nil
}

// scanAxis groups a run of isBlack(i)==true positions in [0,length) into
// inclusive Ranges; a border with no black pixel at all is a failure, as
// it would mean the image declares no stretchable region.
func scanAxis(length int, isBlack func(i int) bool) ([]Range, error) {
	var ranges []Range
	inRun := false
	var start int
	for i := 0; i < length; i++ {
		if isBlack(i) {
			if !inRun {
				start = i
				inRun = true
			}
		} else if inRun {
			ranges = append(ranges, Range{Start: start, End: i - 1})
			inRun = false
		}
	}
	if inRun {
		ranges = append(ranges, Range{Start: start, End: length - 1})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no stretch region marked")
	}
	return ranges, nil
}

// scanPadding finds the span from the first to the last black pixel on a
// padding border and returns (leading gap, trailing gap) — the padding on
// each side. Gaps inside that span are not checked.
// An all-transparent border is valid: it means zero padding on this axis.
func scanPadding(length int, isBlack func(i int) bool) (lead, trail int, err error) {
	first, last := -1, -1
	for i := 0; i < length; i++ {
		if isBlack(i) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return 0, 0, nil
	}
	return first, length - 1 - last, nil
}

// StripBorder returns a fresh (height-2)x(width-2) image copying the
// interior of img, the pixels the 9-patch border itself is consumed
// from (spec.md §4.5 step 4 and DESIGN NOTES: a fresh raster rather than
// the source's in-place row-pointer shuffle).
func StripBorder(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx()-2, b.Dy()-2
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(b.Min.X+1, b.Min.Y+1+y)
		dstOff := out.PixOffset(0, y)
		copy(out.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return out
}
