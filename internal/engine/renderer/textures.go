package renderer

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"mirrorbox/internal/engine/texture"
	"mirrorbox/internal/logger"
)

// textureCount is the number of material texture slots.
const textureCount = 4

// textureFiles maps texture slots to asset file names. Slot order matches
// the materials' TexIndex values: bricks, checkerboard, ice, white.
var textureFiles = [textureCount]string{
	"bricks3.tga",
	"checkboard.tga",
	"ice.tga",
	"white1x1.tga",
}

// fallbackImage builds a procedural stand-in for a missing texture file.
func fallbackImage(slot int) *image.RGBA {
	switch slot {
	case 0:
		return texture.Solid(color.RGBA{R: 168, G: 88, B: 66, A: 255})
	case 1:
		return texture.Checkerboard(256, 8,
			color.RGBA{R: 230, G: 230, B: 230, A: 255},
			color.RGBA{R: 60, G: 60, B: 60, A: 255})
	case 2:
		return texture.Solid(color.RGBA{R: 170, G: 200, B: 230, A: 255})
	default:
		return texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}

// loadTextures fills the texture table from the assets directory, falling
// back to procedural images for files that are missing or undecodable.
func (r *Renderer) loadTextures(assetsDir string) {
	for slot, name := range textureFiles {
		img, err := texture.Load(filepath.Join(assetsDir, name))
		if err != nil {
			logger.Warn("texture unavailable, using fallback",
				zap.String("file", name),
				zap.Error(err),
			)
			img = fallbackImage(slot)
		}
		r.textures[slot] = uploadTexture(img)
	}
}

func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	bounds := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
