package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ender-sword/internal/event"
)

func TestTransitions(t *testing.T) {
	type step struct {
		name string
		do   func(c *Controller) bool
		ok   bool
		want State
	}
	open := func(c *Controller) bool { return c.OpenStore() }
	closeStore := func(c *Controller) bool { return c.CloseStore() }
	toggle := func(c *Controller) bool { return c.ToggleMath() }
	closeMath := func(c *Controller) bool { return c.CloseMath() }
	victory := func(c *Controller) bool { return c.Victory() }
	cont := func(c *Controller) bool { return c.Continue() }
	end := func(c *Controller) bool { return c.EndGame() }

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "store round trip",
			steps: []step{
				{"open", open, true, StoreOpen},
				{"open again", open, false, StoreOpen},
				{"close", closeStore, true, Running},
				{"close again", closeStore, false, Running},
			},
		},
		{
			name: "math from running returns to running",
			steps: []step{
				{"toggle", toggle, true, MathOpen},
				{"close", closeMath, true, Running},
				{"close again", closeMath, false, Running},
			},
		},
		{
			name: "math from store returns to store",
			steps: []step{
				{"open store", open, true, StoreOpen},
				{"toggle", toggle, true, MathOpen},
				{"toggle back", toggle, true, StoreOpen},
				{"toggle", toggle, true, MathOpen},
				{"answered", closeMath, true, StoreOpen},
				{"dismiss", closeStore, true, Running},
				{"toggle", toggle, true, MathOpen},
				{"close", closeMath, true, Running},
			},
		},
		{
			name: "victory continues into store",
			steps: []step{
				{"victory", victory, true, VictoryPaused},
				{"math ignored", toggle, false, VictoryPaused},
				{"store ignored", open, false, VictoryPaused},
				{"continue", cont, true, StoreOpen},
				{"continue again", cont, false, StoreOpen},
			},
		},
		{
			name: "game over is terminal",
			steps: []step{
				{"end", end, true, GameOver},
				{"end again", end, false, GameOver},
				{"math", toggle, false, GameOver},
				{"store", open, false, GameOver},
				{"continue", cont, false, GameOver},
				{"close math", closeMath, false, GameOver},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(nil)
			for _, s := range tt.steps {
				assert.Equal(t, s.ok, s.do(c), s.name)
				assert.Equal(t, s.want, c.State(), s.name)
			}
		})
	}
}

func TestStoreActiveTracksStore(t *testing.T) {
	c := NewController(nil)
	c.OpenStore()
	c.ToggleMath()
	assert.True(t, c.StoreActive())
	c.CloseMath()
	c.CloseStore()
	assert.False(t, c.StoreActive())
}

func TestDispatchesGateChanged(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.GateChangedData
	d.Subscribe(event.GateChanged, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.GateChangedData))
	}))

	c := NewController(d)
	c.OpenStore()
	c.OpenStore()
	c.CloseStore()

	require.Len(t, got, 2)
	assert.Equal(t, event.GateChangedData{From: "running", To: "store"}, got[0])
	assert.Equal(t, event.GateChangedData{From: "store", To: "running"}, got[1])
}
