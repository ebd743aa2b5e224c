package tetra

import "fmt"

// TextureID names one of the block textures.
type TextureID uint8

const (
	TextureBlue TextureID = iota
	TextureGreen
	TextureGrey
	TextureOrange
	TexturePearl
	TexturePurple
	TextureRed
	TextureYellow

	textureCount
)

// Textures lists every texture, in the order they are loaded.
var Textures = [textureCount]TextureID{
	TextureBlue, TextureGreen, TextureGrey, TextureOrange,
	TexturePearl, TexturePurple, TextureRed, TextureYellow,
}

var textureNames = [textureCount]string{"blue", "green", "grey", "orange", "pearl", "purple", "red", "yellow"}

func (t TextureID) String() string {
	if t >= textureCount {
		return fmt.Sprintf("TextureID(%d)", uint8(t))
	}
	return textureNames[t]
}

// PaintKind tags the variant held by a Paint.
type PaintKind uint8

const (
	PaintTexture PaintKind = iota
	PaintSolid
)

// Paint is either a texture reference or a solid 0xRRGGBB color.
type Paint struct {
	Kind    PaintKind
	Texture TextureID
	Color   uint32
}

func TexturePaint(id TextureID) Paint {
	return Paint{Kind: PaintTexture, Texture: id}
}

func SolidPaint(rgb uint32) Paint {
	return Paint{Kind: PaintSolid, Color: rgb & 0xFFFFFF}
}

// Key packs the paint into a single integer, unique per distinct paint.
func (p Paint) Key() uint64 {
	if p.Kind == PaintSolid {
		return 1<<32 | uint64(p.Color)
	}
	return uint64(p.Texture)
}

func (p Paint) String() string {
	if p.Kind == PaintSolid {
		return fmt.Sprintf("#%06x", p.Color)
	}
	return p.Texture.String()
}

// Form is the visual primitive a cell is drawn as. It carries no rule
// meaning; renderers use it for layering.
type Form uint8

const (
	FormBackdrop Form = iota
	FormFrame
	FormBlock
	FormMarker

	FormCount
)

var formNames = [FormCount]string{"backdrop", "frame", "block", "marker"}

func (f Form) String() string {
	if f >= FormCount {
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
	return formNames[f]
}
