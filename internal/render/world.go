// internal/render/world.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/types"
	pkgrender "ender-sword/pkg/render"
)

// WorldRenderer рисует сущности
type WorldRenderer struct {
	arena     *pkgrender.ArenaRenderer
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

func NewWorldRenderer() *WorldRenderer {
	palettes := map[string]pkgrender.ArenaColors{
		string(component.ThemeDojo):    pkgrender.ArenaPalette(config.BackgroundDojo, 1),
		string(component.ThemeVillage): pkgrender.ArenaPalette(config.BackgroundVillage, 1),
		string(component.ThemeGate):    pkgrender.ArenaPalette(config.BackgroundGate, 1),
	}
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)
	return &WorldRenderer{
		arena:     pkgrender.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, palettes),
		strokeImg: strokeImg,
	}
}

// DrawCooldown sweeps a clockwise arc from twelve o'clock around the player
// while the attack cooldown runs. Nothing is drawn once it is ready.
func (r *WorldRenderer) DrawCooldown(screen *ebiten.Image, ecs *entity.ECS, progress float64) {
	pos := ecs.PlayerPosition()
	if pos == nil || progress >= 1 {
		return
	}
	start := float32(-math.Pi / 2)
	end := start + float32(2*math.Pi*progress)

	var path vector.Path
	path.Arc(float32(pos.X), float32(pos.Y), config.CooldownArcRadius, start, end, vector.Clockwise)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: config.CooldownArcWidth,
	})
	c := config.CooldownArcColor
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Draw paints the arena bottom-up: floor, zones, scrolls, enemies,
// projectiles and finally the player.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	r.arena.Draw(screen, string(ecs.Progression.Theme))

	for _, id := range ecs.ZoneIDs() {
		r.drawCircle(screen, ecs, id, false)
	}
	for _, id := range ecs.DropIDs() {
		r.drawCircle(screen, ecs, id, true)
	}
	for _, id := range ecs.EnemyIDs() {
		r.drawEnemy(screen, ecs, id)
	}
	for _, id := range ecs.ProjectileIDs() {
		r.drawCircle(screen, ecs, id, false)
	}
	r.drawCircle(screen, ecs, ecs.PlayerID, true)
}

func (r *WorldRenderer) drawCircle(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, stroke bool) {
	pos, ok := ecs.Positions[id]
	render, ok2 := ecs.Renderables[id]
	if !ok || !ok2 {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	if stroke && render.HasStroke {
		vector.DrawFilledCircle(screen, x, y, render.Radius+config.StrokeWidth, config.TextDarkColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	pos, ok := ecs.Positions[id]
	enemy := ecs.Enemies[id]
	render := ecs.Renderables[id]
	if !ok || enemy == nil || render == nil {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)

	body := render.Color
	if flash, hit := ecs.DamageFlashes[id]; hit && flash.Timer > 0 {
		body = color.RGBA{255, 255, 255, 255}
	}
	vector.DrawFilledCircle(screen, x, y, render.Radius+config.StrokeWidth, pkgrender.DarkenColor(render.Color), true)
	vector.DrawFilledCircle(screen, x, y, render.Radius, body, true)

	// глаза смотрят туда, куда идёт враг
	eye := defs.EnemyLibrary[enemy.Skin].Visuals.EyeColor
	dir := float32(1)
	if enemy.FacingLeft {
		dir = -1
	}
	vector.DrawFilledCircle(screen, x+dir*render.Radius*0.3, y-render.Radius*0.25, 2, eye, true)
	vector.DrawFilledCircle(screen, x+dir*render.Radius*0.65, y-render.Radius*0.25, 2, eye, true)

	if h := ecs.Healths[id]; h != nil && !h.Full() {
		w := render.Radius * 2
		frac := float32(h.Value) / float32(h.Max)
		vector.DrawFilledRect(screen, x-render.Radius, y-render.Radius-6, w, 3, config.BarBackColor, false)
		vector.DrawFilledRect(screen, x-render.Radius, y-render.Radius-6, w*frac, 3, config.HealthBarColor, false)
	}
}
