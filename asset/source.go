package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/plus3/tetra/tetra"
)

var palette = [...]color.RGBA{
	tetra.TextureBlue:   {0x2f, 0x6f, 0xeb, 0xff},
	tetra.TextureGreen:  {0x3c, 0xc4, 0x5a, 0xff},
	tetra.TextureGrey:   {0x8a, 0x8f, 0x98, 0xff},
	tetra.TextureOrange: {0xf2, 0x8c, 0x28, 0xff},
	tetra.TexturePearl:  {0xea, 0xe6, 0xdc, 0xff},
	tetra.TexturePurple: {0x9b, 0x4d, 0xca, 0xff},
	tetra.TextureRed:    {0xe0, 0x3c, 0x3c, 0xff},
	tetra.TextureYellow: {0xf5, 0xd0, 0x2e, 0xff},
}

// Color is the base color of a texture, used by procedural tiles and as a
// fallback when a texture image is missing.
func Color(id tetra.TextureID) color.RGBA {
	if int(id) >= len(palette) {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	return palette[id]
}

// Solid converts a 0xRRGGBB solid paint color.
func Solid(rgb uint32) color.RGBA {
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}
}

// Procedural draws bevelled square tiles of the given size in each
// texture's base color.
func Procedural(size int) LoadFunc {
	return func(ctx context.Context, id tetra.TextureID) (image.Image, error) {
		if int(id) >= len(palette) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTexture, id)
		}
		base := palette[id]
		light := shade(base, 1.35)
		dark := shade(base, 0.6)
		bevel := max(size/8, 1)

		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := base
				switch {
				case x < bevel || y < bevel:
					c = light
				case x >= size-bevel || y >= size-bevel:
					c = dark
				}
				img.SetRGBA(x, y, c)
			}
		}
		return img, nil
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(float64(v)*f, 255))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

var extensions = []string{".png", ".jpg", ".jpeg"}

// FS decodes textures named after their id (blue.png, red.jpg, ...) from
// dir inside fsys.
func FS(fsys fs.FS, dir string) LoadFunc {
	return func(ctx context.Context, id tetra.TextureID) (image.Image, error) {
		if int(id) >= len(palette) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTexture, id)
		}
		for _, ext := range extensions {
			name := path.Join(dir, id.String()+ext)
			f, err := fsys.Open(name)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			img, _, err := image.Decode(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", name, err)
			}
			return img, nil
		}
		return nil, fmt.Errorf("texture %s in %s: %w", id, dir, fs.ErrNotExist)
	}
}
