package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ender-sword/internal/intent"
	intentmock "ender-sword/internal/intent/mock"
)

func TestRouterSendsHitsToAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := intentmock.NewMockSoundPlayer(ctrl)
	sink := intentmock.NewMockEffectSink(ctrl)

	number := intent.Intent{Kind: intent.DamageNumber, X: 10, Y: 20, Value: 10}
	sound.EXPECT().PlayHit().Times(2)
	sink.EXPECT().Spawn(number).Times(1)

	r := intent.NewRouter(sound, sink)
	r.Route([]intent.Intent{
		{Kind: intent.SoundHit},
		number,
		{Kind: intent.SoundHit},
	})
}

func TestRouterFansOutToEverySink(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := intentmock.NewMockEffectSink(ctrl)
	b := intentmock.NewMockEffectSink(ctrl)

	overlay := intent.Intent{Kind: intent.OverlayChanged, Text: "store"}
	a.EXPECT().Spawn(overlay)
	b.EXPECT().Spawn(overlay)

	intent.NewRouter(nil, a, b).Route([]intent.Intent{overlay, {Kind: intent.SoundHit}})
}

func TestBufferDrain(t *testing.T) {
	var buf intent.Buffer
	buf.Push(intent.Intent{Kind: intent.GameOver})
	assert.Equal(t, 1, buf.Len())

	got := buf.Drain()
	assert.Len(t, got, 1)
	assert.Zero(t, buf.Len())
	assert.Empty(t, buf.Drain())
}
