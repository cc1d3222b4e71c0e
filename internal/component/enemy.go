package component

// MovementPattern is chosen once at spawn.
type MovementPattern int

const (
	PatternDirect MovementPattern = iota
	PatternZigzag
)

func (p MovementPattern) String() string {
	if p == PatternZigzag {
		return "zigzag"
	}
	return "direct"
}

// Skin is the cosmetic variant, it alternates by wave parity.
type Skin string

const (
	SkinEnderman     Skin = "enderman"
	SkinSpiderJockey Skin = "spider_jockey"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Speed      float64
	Pattern    MovementPattern
	OffsetX    float64 // private point around the player, fixed at spawn
	OffsetY    float64
	ZigzagTime float64
	ZigzagDir  float64 // +1 or -1
	Skin       Skin
	FacingLeft bool
}
