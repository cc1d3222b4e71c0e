package component

// Theme is the arena backdrop, derived from the wave number.
type Theme string

const (
	ThemeDojo    Theme = "dojo"
	ThemeVillage Theme = "village"
	ThemeGate    Theme = "gate"
)

// Progression holds wave and economy counters
type Progression struct {
	Wave          int
	WaveProgress  int
	WaveTarget    int
	KillsThisWave int
	TotalKills    int
	Currency      int
	Scrolls       int
	Elapsed       float64 // seconds spent in the Running gate
	AwaitingMath  bool
	Theme         Theme
}
