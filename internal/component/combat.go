package component

// Health holds hit points; Value never drops below zero
type Health struct {
	Value int
	Max   int
}

func (h *Health) Full() bool {
	return h.Value >= h.Max
}
