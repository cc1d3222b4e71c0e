package defs

// PowerUpID names one of the four store abilities.
type PowerUpID string

const (
	PowerUpDash     PowerUpID = "invisibility_dash"
	PowerUpRecovery PowerUpID = "accelerated_recovery"
	PowerUpPoison   PowerUpID = "poison_zone"
	PowerUpUltra    PowerUpID = "ultra_blast"
)

// PowerUpDefinition is a store card. Level is runtime state and is reset at
// every wave.
type PowerUpDefinition struct {
	ID          PowerUpID `json:"id"`
	Name        string    `json:"name"`
	Cost        int       `json:"cost"`
	Level       int       `json:"level"`
	MaxLevel    int       `json:"max_level"`
	Description string    `json:"description"`
}

func (d PowerUpDefinition) Owned() bool {
	return d.Level > 0
}

func (d PowerUpDefinition) Maxed() bool {
	return d.Level >= d.MaxLevel
}

// DefaultPowerUps returns a fresh copy of the built-in catalog, store order.
func DefaultPowerUps() []PowerUpDefinition {
	return []PowerUpDefinition{
		{
			ID:          PowerUpDash,
			Name:        "Invisibility Dash",
			Cost:        50,
			MaxLevel:    1,
			Description: "Become invisible and fast for 5s. Enemies you touch are destroyed.",
		},
		{
			ID:          PowerUpRecovery,
			Name:        "Accelerated Recovery",
			Cost:        60,
			MaxLevel:    1,
			Description: "Regenerate health faster.",
		},
		{
			ID:          PowerUpPoison,
			Name:        "Poison Zone Blast",
			Cost:        80,
			MaxLevel:    1,
			Description: "Launch a fireball that leaves a poison cloud. 10s cooldown.",
		},
		{
			ID:          PowerUpUltra,
			Name:        "Ultra One-Shot Blast",
			Cost:        100,
			MaxLevel:    1,
			Description: "Destroy every enemy around you. 2 uses per wave.",
		},
	}
}
