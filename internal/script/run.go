package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/wordpot/internal/engine"
	"github.com/lox/wordpot/internal/game"
)

// Result is the outcome of one step.
type Result struct {
	Step    Step
	Effects []game.Effect
	Err     error // the rejection, when the step expected one
}

// Run creates session id on e and replays the steps. Steps without a block time use the
// session's, and if that is unset, the clock. Run stops at the first step whose outcome
// differs from its expectation.
func (s *Script) Run(ctx context.Context, e *engine.Engine, id string, clock quartz.Clock) ([]Result, error) {
	if err := e.Init(ctx, id, s.Session.Password, s.Session.LevelDesign); err != nil {
		return nil, err
	}

	defaultTime := s.Session.BlockTime
	if defaultTime == 0 {
		defaultTime = uint64(clock.Now().Unix())
	}
	denom := e.Rules().Denom

	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		env := game.Env{Sender: step.Sender, BlockTime: step.BlockTime}
		if env.BlockTime == 0 {
			env.BlockTime = defaultTime
		}
		if step.Funds > 0 {
			d := step.Denom
			if d == "" {
				d = denom
			}
			env.Funds = []game.Coin{{Denom: d, Amount: step.Funds}}
		}

		effects, err := e.Execute(ctx, id, env, step.Command)
		switch {
		case step.Expect == nil && err != nil:
			return results, fmt.Errorf("step %d (%s by %s at %s): %w", i+1, step.Command.Name(), step.Sender, step.Range, err)
		case step.Expect != nil && err == nil:
			return results, fmt.Errorf("step %d (%s by %s at %s): succeeded, want %v", i+1, step.Command.Name(), step.Sender, step.Range, step.Expect)
		case step.Expect != nil && !errors.Is(err, step.Expect):
			return results, fmt.Errorf("step %d (%s by %s at %s): got %w, want %v", i+1, step.Command.Name(), step.Sender, step.Range, err, step.Expect)
		}
		results = append(results, Result{Step: step, Effects: effects, Err: err})
	}
	return results, nil
}
