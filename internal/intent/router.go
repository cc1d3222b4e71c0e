package intent

//go:generate mockgen -destination=mock/mock.go -package=intentmock ender-sword/internal/intent SoundPlayer,EffectSink

// SoundPlayer plays the hit sound. Calls must not block the frame.
type SoundPlayer interface {
	PlayHit()
}

// EffectSink receives every non-audio intent, usually a renderer.
type EffectSink interface {
	Spawn(in Intent)
}

// Router fans intents out to the host collaborators.
type Router struct {
	sound SoundPlayer
	sinks []EffectSink
}

func NewRouter(sound SoundPlayer, sinks ...EffectSink) *Router {
	return &Router{sound: sound, sinks: sinks}
}

func (r *Router) Route(list []Intent) {
	for _, in := range list {
		if in.Kind == SoundHit {
			if r.sound != nil {
				r.sound.PlayHit()
			}
			continue
		}
		for _, sink := range r.sinks {
			sink.Spawn(in)
		}
	}
}
