// Package engine is the session orchestrator. It loads a session blob from the store,
// applies one command through game.Apply and writes the new blob back only when the
// command succeeds. Effects are returned for the host to execute.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/protocol"
	"github.com/lox/wordpot/internal/store"
)

// StateKey is the store key holding a session's state blob.
const StateKey = "state"

var (
	// ErrNoSession is returned when a session id has no stored state.
	ErrNoSession = errors.New("engine: no such session")

	// ErrSessionExists is returned by Init for an id that is already in use.
	ErrSessionExists = errors.New("engine: session already exists")
)

// Engine runs commands and queries against stored sessions. Commands against the same
// session must not run concurrently.
type Engine struct {
	store  store.Store
	rules  game.Rules
	logger *log.Logger
}

// New returns an engine that plays under rules.
func New(st store.Store, rules game.Rules, logger *log.Logger) *Engine {
	return &Engine{
		store:  st,
		rules:  rules,
		logger: logger.WithPrefix("engine"),
	}
}

// Rules returns the rules the engine plays under.
func (e *Engine) Rules() game.Rules {
	return e.rules
}

// Init creates an empty session under id.
func (e *Engine) Init(ctx context.Context, id, password string, levelDesign uint64) error {
	if _, err := e.store.Get(ctx, id, StateKey); err == nil {
		return fmt.Errorf("%w: %s", ErrSessionExists, id)
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load session %s: %w", id, err)
	}

	if err := e.save(ctx, id, game.NewSession(e.rules, password, levelDesign)); err != nil {
		return err
	}
	e.logger.Info("Created session", "session", id, "password", password != "", "level_design", levelDesign)
	return nil
}

// Execute applies cmd on behalf of env.Sender. On any error the stored blob is left
// untouched. Rejections are *game.RejectError values.
func (e *Engine) Execute(ctx context.Context, id string, env game.Env, cmd game.Command) ([]game.Effect, error) {
	logger := e.logger.With("session", id, "command", cmd.Name(), "sender", env.Sender)

	s, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, effects, err := game.Apply(s, e.rules, env, cmd)
	if err != nil {
		logger.Debug("Rejected command", "reason", err)
		return nil, err
	}

	if err := e.save(ctx, id, next); err != nil {
		return nil, err
	}

	logger.Debug("Applied command", "round", next.Board.Round, "turn", next.Board.Turn, "effects", len(effects))
	if s.Board.WinnerForTurn == "" && next.Board.WinnerForTurn != "" {
		logger.Info("Turn settled", "turn", next.Board.Turn, "winner", next.Board.WinnerForTurn)
	}
	if !s.Concluded() && next.Concluded() {
		logger.Info("Session concluded", "winner", next.Winner, "turns", next.Board.Turn)
	}
	return effects, nil
}

// GameState returns the session as seen by the player holding secret.
func (e *Engine) GameState(ctx context.Context, id string, secret uint64) (*game.GameView, error) {
	s, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.View(secret, e.rules)
}

// CanJoin reports whether the session has a free seat.
func (e *Engine) CanJoin(ctx context.Context, id string) (game.JoinStatus, error) {
	s, err := e.load(ctx, id)
	if err != nil {
		return game.JoinStatus{}, err
	}
	return s.JoinStatus(e.rules), nil
}

// Result returns the final outcome of a concluded session.
func (e *Engine) Result(ctx context.Context, id string) (*game.Outcome, error) {
	s, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Outcome()
}

func (e *Engine) load(ctx context.Context, id string) (*game.Session, error) {
	data, err := e.store.Get(ctx, id, StateKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	var s game.Session
	if err := protocol.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (e *Engine) save(ctx context.Context, id string, s *game.Session) error {
	data, err := protocol.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := e.store.Put(ctx, id, StateKey, data); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}
