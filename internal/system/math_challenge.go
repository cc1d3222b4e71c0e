// internal/system/math_challenge.go
package system

import (
	"log/slog"

	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/gate"
	"ender-sword/internal/intent"
	"ender-sword/internal/quiz"
	"ender-sword/internal/scheduler"
)

const (
	FeedbackCorrect   = "CORRECT! +10 Currency"
	FeedbackIncorrect = "INCORRECT!"
)

// MathSystem runs the multiplication overlay. Every opening asks a fresh
// question and only the first answer counts.
type MathSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *scheduler.Scheduler
	gate            *gate.Controller
	generator       *quiz.Generator
	fx              *intent.Buffer

	challenge     quiz.Challenge
	answered      bool
	correct       bool
	feedback      string
	feedbackTimer scheduler.Handle
}

func NewMathSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, sched *scheduler.Scheduler, g *gate.Controller, generator *quiz.Generator, fx *intent.Buffer) *MathSystem {
	return &MathSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       sched,
		gate:            g,
		generator:       generator,
		fx:              fx,
	}
}

func (s *MathSystem) Challenge() quiz.Challenge { return s.challenge }
func (s *MathSystem) Answered() bool            { return s.answered }

// Feedback is empty until the question is answered.
func (s *MathSystem) Feedback() (string, bool) { return s.feedback, s.correct }

// Toggle opens the overlay, or closes it when it is already open.
func (s *MathSystem) Toggle() bool {
	if s.gate.State() == gate.MathOpen {
		return s.Close()
	}
	if s.gate.State() != gate.Running && s.gate.State() != gate.StoreOpen {
		return false
	}

	challenge, err := s.generator.Next()
	if err != nil {
		slog.Error("math challenge", "error", err)
		return false
	}
	s.cancelFeedback()
	s.challenge = challenge
	s.answered = false
	s.correct = false
	s.feedback = ""
	return s.gate.ToggleMath()
}

// Close leaves the overlay whether or not it was answered. A pending
// challenge stays pending.
func (s *MathSystem) Close() bool {
	s.cancelFeedback()
	return s.gate.CloseMath()
}

// Answer takes a 0-based answer index.
func (s *MathSystem) Answer(index int) bool {
	if s.gate.State() != gate.MathOpen || s.answered {
		return false
	}
	if index < 0 || index >= len(s.challenge.Answers) {
		return false
	}
	s.answered = true
	s.correct = s.challenge.IsCorrect(index)

	if s.correct {
		s.feedback = FeedbackCorrect
		s.ecs.Progression.Currency += config.QuizReward
		s.ecs.Progression.AwaitingMath = false
		if player := s.ecs.Player(); player != nil {
			player.CanAttack = true
			player.ShotsFired = 0
		}
	} else {
		s.feedback = FeedbackIncorrect
	}

	value := 0
	if s.correct {
		value = 1
	}
	s.fx.Push(intent.Intent{Kind: intent.MathFeedback, Text: s.feedback, Value: value})
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.MathAnswered, Data: s.correct})
	}
	s.feedbackTimer = s.scheduler.ScheduleOnce(scheduler.LaneUI, config.QuizFeedbackDelay,
		scheduler.Message{Kind: MsgFeedbackClose})
	return true
}

// OnFeedbackClose hides the answered overlay.
func (s *MathSystem) OnFeedbackClose() {
	s.feedbackTimer = 0
	if s.answered && s.gate.State() == gate.MathOpen {
		s.gate.CloseMath()
	}
}

func (s *MathSystem) cancelFeedback() {
	if s.feedbackTimer != 0 {
		s.scheduler.Cancel(s.feedbackTimer)
		s.feedbackTimer = 0
	}
}
