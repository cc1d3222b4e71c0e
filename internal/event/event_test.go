package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &countingListener{}
	died := &countingListener{}
	d.Subscribe(EnemyKilled, killed)
	d.Subscribe(PlayerDied, died)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{EnemyID: 3}})

	assert.Len(t, killed.got, 1)
	assert.Empty(t, died.got)
	assert.EqualValues(t, 3, killed.got[0].Data.(EnemyKilledData).EnemyID)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(WaveAdvanced, l)
	d.Unsubscribe(WaveAdvanced, l)

	d.Dispatch(Event{Type: WaveAdvanced})
	assert.Empty(t, l.got)
}

func TestListenerFuncOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(GateChanged, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(GateChanged, ListenerFunc(func(Event) { order = append(order, 2) }))

	d.Dispatch(Event{Type: GateChanged})
	assert.Equal(t, []int{1, 2}, order)
}
