package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/randutil"
	"github.com/lox/wordpot/words"
)

func testBot(strategy string) *bot {
	return &bot{addr: "me", secret: 1, strategy: strategy, rng: randutil.New(1), rules: game.DefaultRules()}
}

func view(round game.Round, me game.PlayerView, others ...game.PlayerView) *game.GameView {
	me.Addr = "me"
	return &game.GameView{You: "me", Round: round, Players: append([]game.PlayerView{me}, others...)}
}

func TestBotDecide(t *testing.T) {
	t.Parallel()

	const mb = 1_000_000
	rich := game.PlayerView{Chips: 10 * mb}

	tests := []struct {
		name string
		view *game.GameView
		want game.Command
	}{
		{
			name: "requests the next turn once resolved",
			view: func() *game.GameView {
				v := view(game.RoundChoice, rich)
				v.WinnerForTurn = "someone"
				return v
			}(),
			want: game.RequestNextTurn{},
		},
		{
			name: "idle once the session is over",
			view: func() *game.GameView {
				v := view(game.RoundBlind, rich)
				v.Winner = "someone"
				return v
			}(),
		},
		{
			name: "idle while folded",
			view: view(game.RoundBlind, game.PlayerView{Folded: true, Chips: 10 * mb}),
		},
		{
			name: "idle after acting in a phase",
			view: view(game.RoundFlop, game.PlayerView{Chips: 10 * mb, LastAction: game.LastAction{Kind: game.ActionChecked}}),
		},
		{
			name: "bets big on a strong hand",
			view: view(game.RoundBlind, game.PlayerView{Chips: 10 * mb, Hand: words.MustParseCards("QUIZE")}),
			want: game.Bet{Amount: 2 * mb},
		},
		{
			name: "checks without a word",
			view: view(game.RoundBlind, game.PlayerView{Chips: 10 * mb, Hand: words.MustParseCards("BQVZX")}),
			want: game.Check{},
		},
		{
			name: "checks when short of the minimum bet",
			view: view(game.RoundBlind, game.PlayerView{Chips: mb - 1, Hand: words.MustParseCards("QUIZE")}),
			want: game.Check{},
		},
		{
			name: "matches the gap",
			view: view(game.RoundMatching, game.PlayerView{Bet: mb, Chips: 10 * mb},
				game.PlayerView{Addr: "them", Bet: 3 * mb}),
			want: game.Match{Amount: 2 * mb},
		},
		{
			name: "matches the flop gap from the second accumulator",
			view: view(game.RoundMatching2, game.PlayerView{Bet: 5 * mb, Chips: 10 * mb},
				game.PlayerView{Addr: "them", Bet: 5 * mb, Bet2: mb}),
			want: game.Match{Amount: mb},
		},
		{
			name: "ignores folded players when matching",
			view: view(game.RoundMatching, game.PlayerView{Bet: mb, Chips: 10 * mb},
				game.PlayerView{Addr: "them", Bet: 2 * mb},
				game.PlayerView{Addr: "gone", Bet: 9 * mb, Folded: true}),
			want: game.Match{Amount: mb},
		},
		{
			name: "folds when the gap is unaffordable",
			view: view(game.RoundMatching, game.PlayerView{Bet: mb, Chips: mb},
				game.PlayerView{Addr: "them", Bet: 3 * mb}),
			want: game.Fold{},
		},
		{
			name: "waits when level",
			view: view(game.RoundMatching, game.PlayerView{Bet: 3 * mb, Chips: mb},
				game.PlayerView{Addr: "them", Bet: mb}),
		},
		{
			name: "plays the best word",
			view: func() *game.GameView {
				v := view(game.RoundChoice, game.PlayerView{Chips: mb, Hand: words.MustParseCards("DOGQZ")})
				v.River = words.MustParseCards("JJJJJ")
				return v
			}(),
			want: game.PutDownCard{Indexes: []byte{250, 1, 2}, OpenedDictionary: true},
		},
		{
			name: "idle after putting down",
			view: view(game.RoundChoice, game.PlayerView{Chips: mb, PutDown: true}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, testBot(StrategySolver).decide(tt.view))
		})
	}
}

func TestRandomBotAlwaysActs(t *testing.T) {
	t.Parallel()

	b := testBot(StrategyRandom)
	for range 50 {
		v := view(game.RoundBlind, game.PlayerView{Chips: 10_000_000, Hand: words.MustParseCards("CATDO")})
		switch cmd := b.decide(v).(type) {
		case game.Check, game.Fold:
		case game.Bet:
			assert.GreaterOrEqual(t, cmd.Amount, b.rules.MinBet)
			assert.LessOrEqual(t, cmd.Amount, uint64(10_000_000))
		default:
			t.Fatalf("unexpected command %T", cmd)
		}

		v = view(game.RoundChoice, game.PlayerView{Chips: 10_000_000, Hand: words.MustParseCards("BQVZX")})
		cmd, ok := b.decide(v).(game.PutDownCard)
		if assert.True(t, ok) {
			assert.Len(t, cmd.Indexes, 1)
			assert.Less(t, cmd.Indexes[0], byte(5))
		}
	}
}
