// Package statistics aggregates simulated session results.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// MaxSeats is the number of seats tracked per session.
const MaxSeats = 4

// SeatResult is one player's outcome in a session.
type SeatResult struct {
	Seat     int // 1-based join order
	Strategy string
	BuyIn    uint64
	Final    uint64 // chips paid out at the end
}

// Net returns the seat's profit in chips.
func (r SeatResult) Net() int64 {
	return int64(r.Final) - int64(r.BuyIn)
}

// SessionResult is the outcome of a single simulated session.
type SessionResult struct {
	Seed       int64 // RNG seed for the session (for replay)
	Turns      uint64
	Winner     int // winning seat, 1-based
	Rake       uint64
	Rejections int // bot commands the engine refused
	Seats      []SeatResult
	BestWord   string
	BestScore  uint32
}

// SeatStats tracks results for one seat position.
type SeatStats struct {
	Sessions int
	Wins     int
	SumNet   float64
}

// StrategyStats tracks results for one bot strategy.
type StrategyStats struct {
	Seats  int
	Wins   int
	SumNet float64
}

// Statistics tracks aggregate simulation statistics. Turn counts feed the mean, spread
// and percentiles.
type Statistics struct {
	Sessions  int
	SumTurns  float64
	SumTurns2 float64   // sum of squares for variance
	Turns     []float64 // kept for median and percentiles

	BuyIns     uint64
	Payouts    uint64
	Rake       uint64
	Rejections int

	SeatResults [MaxSeats + 1]SeatStats // index 0 unused
	Strategies  map[string]*StrategyStats

	BestWord  string
	BestScore uint32
}

// Add incorporates a session result.
func (s *Statistics) Add(result SessionResult) {
	turns := float64(result.Turns)
	s.Sessions++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)
	s.Rake += result.Rake
	s.Rejections += result.Rejections

	if s.Strategies == nil {
		s.Strategies = make(map[string]*StrategyStats)
	}
	for _, seat := range result.Seats {
		s.BuyIns += seat.BuyIn
		s.Payouts += seat.Final
		won := seat.Seat == result.Winner
		net := float64(seat.Net())

		if seat.Seat >= 1 && seat.Seat <= MaxSeats {
			ss := &s.SeatResults[seat.Seat]
			ss.Sessions++
			ss.SumNet += net
			if won {
				ss.Wins++
			}
		}

		st := s.Strategies[seat.Strategy]
		if st == nil {
			st = &StrategyStats{}
			s.Strategies[seat.Strategy] = st
		}
		st.Seats++
		st.SumNet += net
		if won {
			st.Wins++
		}
	}

	if result.BestScore > s.BestScore || (result.BestScore == s.BestScore && s.BestWord == "") {
		s.BestScore = result.BestScore
		s.BestWord = result.BestWord
	}
}

// Mean returns the mean number of turns per session.
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Sessions)
}

// Variance returns the sample variance of turns per session.
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * s.StdError()
	return s.Mean() - margin, s.Mean() + margin
}

// Median returns the median number of turns.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the turn count at p (0.0 to 1.0), interpolating between samples.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Turns)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// WinRate returns the share of seats played by strategy that won their session.
func (s *Statistics) WinRate(strategy string) float64 {
	st := s.Strategies[strategy]
	if st == nil || st.Seats == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Seats)
}

// Dust returns the chips lost to integer division when pots were split.
func (s *Statistics) Dust() uint64 {
	return s.BuyIns - s.Payouts - s.Rake
}

// Validate checks the aggregate is internally consistent.
func (s *Statistics) Validate() error {
	if s.Sessions <= 0 {
		return fmt.Errorf("invalid session count: %d", s.Sessions)
	}
	if len(s.Turns) != s.Sessions {
		return fmt.Errorf("turn samples (%d) do not match session count (%d)", len(s.Turns), s.Sessions)
	}
	if s.Payouts+s.Rake > s.BuyIns {
		return fmt.Errorf("ledger mismatch: payouts %d + rake %d exceed buy-ins %d", s.Payouts, s.Rake, s.BuyIns)
	}
	wins := 0
	for seat := 1; seat <= MaxSeats; seat++ {
		wins += s.SeatResults[seat].Wins
	}
	if wins != s.Sessions {
		return fmt.Errorf("seat wins (%d) do not match session count (%d)", wins, s.Sessions)
	}
	return nil
}
