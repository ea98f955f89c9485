// Package game implements the word game session state machine: seating, dealing,
// betting rounds, word submission and pot settlement.
//
// The aggregate is Session. It is never changed in place; Apply takes the current
// session, the table Rules, the caller Env and a Command, and returns the next session
// along with the Effects the host has to carry out:
//
//	next, effects, err := game.Apply(s, rules, game.Env{Sender: "alice", BlockTime: t}, game.Bet{Amount: 1_000_000})
//	if err != nil {
//	    // s is unchanged; err is a *game.RejectError
//	}
//
// # Turn structure
//
// Dealing happens when the second player joins. Each turn then runs
//
//	Blind -> (Matching) -> Flop -> (Matching2) -> Choice
//
// Players bet or check in Blind and Flop. When bets differ, or someone checked while
// others bet, the matching round asks everyone below the highest bet to pay the gap or
// fold. In Choice every remaining player puts down a word and the highest score takes
// the pool minus rake. A turn also ends early when all but one player fold or leave.
// RequestNextTurn deals a new river and returns to Blind.
//
// # Determinism
//
// The deck is seeded from the block time of the dealing call and the players' secrets
// in join order, and the engine never reads a clock or any other outside randomness.
// Replaying the same commands with the same Env values gives identical sessions.
package game
