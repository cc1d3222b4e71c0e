// Package scheduler is a virtual clock with cancellable one-shot and
// repeating timers. Timers live on lanes; a paused lane neither ages nor
// fires, so a timer resumes exactly where it stopped.
package scheduler

import (
	"sort"

	"ender-sword/internal/types"
)

// Lane groups timers that pause together.
type Lane int

const (
	// LaneSim carries gameplay timers and is paused while an overlay is open.
	LaneSim Lane = iota
	// LaneUI is never paused.
	LaneUI
	laneCount
)

// Handle identifies a scheduled timer. Zero is never issued.
type Handle uint64

type MessageKind string

// Message is what a timer delivers. It carries ids only, the receiver
// resolves them against the registry when the timer fires.
type Message struct {
	Kind     MessageKind
	EntityID types.EntityID
}

// epsilon absorbs float drift from summing frame deltas
const epsilon = 1e-9

// Forever as a repeat count keeps a repeating timer alive until cancelled.
const Forever = -1

type timer struct {
	handle    Handle
	lane      Lane
	due       float64
	interval  float64
	remaining int // repeats left after the next fire, Forever for endless
	seq       uint64
	msg       Message
}

type Scheduler struct {
	now        [laneCount]float64
	paused     [laneCount]bool
	timers     map[Handle]*timer
	nextHandle Handle
	seq        uint64
}

func New() *Scheduler {
	return &Scheduler{
		timers:     make(map[Handle]*timer),
		nextHandle: 1,
	}
}

// ScheduleOnce fires msg once after delay seconds of lane time.
func (s *Scheduler) ScheduleOnce(lane Lane, delay float64, msg Message) Handle {
	return s.add(lane, delay, 0, 0, msg)
}

// ScheduleRepeating fires msg every interval seconds, 1+repeat times in
// total. Pass Forever to repeat until cancelled.
func (s *Scheduler) ScheduleRepeating(lane Lane, interval float64, repeat int, msg Message) Handle {
	if interval <= 0 {
		interval = 1e-9
	}
	return s.add(lane, interval, interval, repeat, msg)
}

func (s *Scheduler) add(lane Lane, delay, interval float64, repeat int, msg Message) Handle {
	if delay < 0 {
		delay = 0
	}
	h := s.nextHandle
	s.nextHandle++
	s.seq++
	s.timers[h] = &timer{
		handle:    h,
		lane:      lane,
		due:       s.now[lane] + delay,
		interval:  interval,
		remaining: repeat,
		seq:       s.seq,
		msg:       msg,
	}
	return h
}

// Cancel removes a timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.timers[h]; !ok {
		return false
	}
	delete(s.timers, h)
	return true
}

func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.timers[h]
	return ok
}

// Len is the number of pending timers on all lanes.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

func (s *Scheduler) PauseLane(lane Lane)  { s.paused[lane] = true }
func (s *Scheduler) ResumeLane(lane Lane) { s.paused[lane] = false }

func (s *Scheduler) Paused(lane Lane) bool {
	return s.paused[lane]
}

// Now is the lane's virtual time in seconds.
func (s *Scheduler) Now(lane Lane) float64 {
	return s.now[lane]
}

// Remaining is the lane time left before h fires, or -1 when h is gone.
func (s *Scheduler) Remaining(h Handle) float64 {
	t, ok := s.timers[h]
	if !ok {
		return -1
	}
	return t.due - s.now[t.lane]
}

// Advance moves every running lane forward by dt seconds and calls fire for
// each due timer in due order, ties broken by scheduling order. fire may
// schedule, cancel, pause or resume; a lane paused from inside fire stops
// at the time of the timer that paused it.
func (s *Scheduler) Advance(dt float64, fire func(Message)) {
	if dt < 0 {
		dt = 0
	}
	var start [laneCount]float64
	var advancing [laneCount]bool
	for l := Lane(0); l < laneCount; l++ {
		start[l] = s.now[l]
		advancing[l] = !s.paused[l]
	}

	for {
		next := s.nextDue(start, advancing, dt)
		if next == nil {
			break
		}
		s.now[next.lane] = next.due
		if next.interval > 0 && next.remaining != 0 {
			if next.remaining > 0 {
				next.remaining--
			}
			next.due += next.interval
			s.seq++
			next.seq = s.seq
		} else {
			delete(s.timers, next.handle)
		}
		if fire != nil {
			fire(next.msg)
		}
		for l := Lane(0); l < laneCount; l++ {
			if s.paused[l] {
				advancing[l] = false
			}
		}
	}

	for l := Lane(0); l < laneCount; l++ {
		if advancing[l] {
			s.now[l] = start[l] + dt
		}
	}
}

func (s *Scheduler) nextDue(start [laneCount]float64, advancing [laneCount]bool, dt float64) *timer {
	var best *timer
	bestOffset := 0.0
	for _, t := range s.timers {
		if !advancing[t.lane] {
			continue
		}
		offset := t.due - start[t.lane]
		if offset > dt+epsilon {
			continue
		}
		if best == nil || offset < bestOffset || (offset == bestOffset && t.seq < best.seq) {
			best = t
			bestOffset = offset
		}
	}
	return best
}

// Handles lists pending timers in due order, used by tests and debug views.
func (s *Scheduler) Handles() []Handle {
	list := make([]*timer, 0, len(s.timers))
	for _, t := range s.timers {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].due != list[j].due {
			return list[i].due < list[j].due
		}
		return list[i].seq < list[j].seq
	})
	out := make([]Handle, len(list))
	for i, t := range list {
		out[i] = t.handle
	}
	return out
}
