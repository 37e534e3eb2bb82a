package pngcompiler

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/respath"
)

// CompiledFile is the PNG Compiler's output (spec.md §4.5): the chosen
// payload plus the identity the Envelope Writer needs.
type CompiledFile struct {
	Name    string
	Type    string
	Config  string
	Source  string
	Payload []byte
}

// Compile runs the PNG Compiler pipeline for one input (spec.md §4.5):
// filter chunks, decode pixels, build and strip a 9-patch border when
// the descriptor names one, re-encode, then pick the smaller of the
// re-encoded and filtered-original payloads — unless a 9-patch was
// found, in which case the re-encoded (border-stripped, chunk-embedded)
// payload always wins, since the filtered original still carries the
// border.
func Compile(d *respath.Descriptor) (*CompiledFile, error) {
	raw, err := os.ReadFile(d.Source)
	if err != nil {
		return nil, cerrors.New(cerrors.KindIO, "read png file", err).WithSource(d.Source)
	}

	filtered, err := filterChunks(raw)
	if err != nil {
		return nil, wrapSource(err, d.Source)
	}

	decoded, err := png.Decode(bytes.NewReader(filtered))
	if err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "decode png", err).WithSource(d.Source)
	}
	nrgba := toNRGBA(decoded)

	isNinePatch := strings.HasSuffix(d.Extension, "9.png")

	var ninePatch *NinePatch
	pixels := nrgba
	if isNinePatch {
		ninePatch, err = BuildNinePatch(nrgba)
		if err != nil {
			return nil, wrapSource(err, d.Source)
		}
		pixels = StripBorder(nrgba)
	}

	reencoded, err := reencode(pixels, ninePatch)
	if err != nil {
		return nil, wrapSource(err, d.Source)
	}

	payload := reencoded
	if !isNinePatch && len(filtered) < len(reencoded) {
		payload = filtered
	}

	return &CompiledFile{
		Name:    d.Name,
		Type:    d.TypeDir,
		Config:  d.ConfigStr,
		Source:  d.Source,
		Payload: payload,
	}, nil
}

// toNRGBA copies img into NRGBA form; StripBorder copies rows straight
// out of the Pix slice.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func wrapSource(err error, source string) error {
	if ce, ok := err.(*cerrors.CompileError); ok {
		return ce.WithSource(source)
	}
	return err
}
