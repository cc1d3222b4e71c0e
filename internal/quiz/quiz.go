// Package quiz generates the multiplication challenge that re-arms the
// player's auto-attack.
package quiz

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"ender-sword/internal/config"
	"ender-sword/internal/errors"
)

//go:generate mockgen -destination=mock/roller.go -package=quizmock github.com/KirkDiggler/rpg-toolkit/dice Roller

// Challenge is one question with four distinct answers.
type Challenge struct {
	A, B    int
	Answers [config.QuizAnswers]int
	Correct int // index into Answers
}

func (c Challenge) Question() string {
	return fmt.Sprintf("What is %d × %d?", c.A, c.B)
}

func (c Challenge) IsCorrect(index int) bool {
	return index == c.Correct
}

type Generator struct {
	roller dice.Roller
}

func NewGenerator(roller dice.Roller) *Generator {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Generator{roller: roller}
}

// Next rolls factors in [2,9], fills the other slots with unique
// distractors in [4,81] and shuffles.
func (g *Generator) Next() (Challenge, error) {
	var c Challenge
	var err error
	if c.A, err = g.between(config.QuizFactorMin, config.QuizFactorMax); err != nil {
		return Challenge{}, err
	}
	if c.B, err = g.between(config.QuizFactorMin, config.QuizFactorMax); err != nil {
		return Challenge{}, err
	}

	product := c.A * c.B
	answers := []int{product}
	for len(answers) < config.QuizAnswers {
		wrong, err := g.between(config.QuizDistractorMin, config.QuizDistractorMax)
		if err != nil {
			return Challenge{}, err
		}
		if !contains(answers, wrong) {
			answers = append(answers, wrong)
		}
	}

	// Fisher-Yates
	for i := len(answers) - 1; i > 0; i-- {
		j, err := g.between(0, i)
		if err != nil {
			return Challenge{}, err
		}
		answers[i], answers[j] = answers[j], answers[i]
	}

	for i, v := range answers {
		c.Answers[i] = v
		if v == product {
			c.Correct = i
		}
	}
	return c, nil
}

func (g *Generator) between(min, max int) (int, error) {
	v, err := g.roller.Roll(max - min + 1)
	if err != nil {
		return 0, errors.Wrap(err, "quiz roll")
	}
	return min + v - 1, nil
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
