// pkg/render/arena_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const tileSize = 48

// ArenaRenderer draws the floor of the play field. Each backdrop is rendered
// once and cached, the frame only blits it.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	palettes     map[string]ArenaColors
	images       map[string]*ebiten.Image
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
}

func NewArenaRenderer(screenWidth, screenHeight int, palettes map[string]ArenaColors) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		palettes:     palettes,
		images:       make(map[string]*ebiten.Image),
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 8),
		fillIs:       make([]uint16, 0, 12),
	}
}

// Draw blits the backdrop for theme, rendering it on first use.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, theme string) {
	img, ok := r.images[theme]
	if !ok {
		img = r.renderArenaImage(theme)
		r.images[theme] = img
	}
	screen.DrawImage(img, nil)
}

func (r *ArenaRenderer) renderArenaImage(theme string) *ebiten.Image {
	colors, ok := r.palettes[theme]
	if !ok {
		colors = ArenaPalette(color.RGBA{30, 30, 30, 255}, 1)
	}
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	img.Fill(colors.BackgroundColor)

	// шахматка из плиток
	for y := 0; y < r.screenHeight; y += tileSize {
		for x := 0; x < r.screenWidth; x += tileSize {
			if (x/tileSize+y/tileSize)%2 == 0 {
				r.drawTile(img, float32(x), float32(y), colors.TileColor)
			}
		}
	}
	for x := 0; x <= r.screenWidth; x += tileSize {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(r.screenHeight), colors.StrokeWidth, colors.LineColor, false)
	}
	for y := 0; y <= r.screenHeight; y += tileSize {
		vector.StrokeLine(img, 0, float32(y), float32(r.screenWidth), float32(y), colors.StrokeWidth, colors.LineColor, false)
	}
	return img
}

func (r *ArenaRenderer) drawTile(target *ebiten.Image, x, y float32, c color.RGBA) {
	path := vector.Path{}
	path.MoveTo(x, y)
	path.LineTo(x+tileSize, y)
	path.LineTo(x+tileSize, y+tileSize)
	path.LineTo(x, y+tileSize)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{})
}
