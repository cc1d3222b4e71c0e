// internal/defs/types.go
package defs

// DamageSource says what dealt the damage.
type DamageSource string

const (
	SourceArrow   DamageSource = "ARROW"
	SourcePoison  DamageSource = "POISON"
	SourceBlast   DamageSource = "BLAST"
	SourceContact DamageSource = "CONTACT" // dash body-check
)
