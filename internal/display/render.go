// Package display renders session views, outcomes and effects for the terminal.
package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/words"
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Card     lipgloss.Style
	GoldCard lipgloss.Style
	Hidden   lipgloss.Style
	Winner   lipgloss.Style
	Folded   lipgloss.Style
	Effect   lipgloss.Style
}

// Renderer writes views to w.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New returns a renderer writing to w. With color disabled every style renders as
// plain text.
func New(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w: w,
		styles: Styles{
			Header: r.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Bold(true),
			Label: r.NewStyle().
				Foreground(lipgloss.Color("#626262")),
			Card: r.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Bold(true),
			GoldCard: r.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				Bold(true),
			Hidden: r.NewStyle().
				Foreground(lipgloss.Color("#626262")),
			Winner: r.NewStyle().
				Foreground(lipgloss.Color("#96CEB4")).
				Bold(true),
			Folded: r.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")),
			Effect: r.NewStyle().
				Foreground(lipgloss.Color("#FFEAA7")),
		},
	}
}

// Cards formats cards separated by spaces. Gold cards keep their '*' marker.
func (r *Renderer) Cards(cards []words.Card) string {
	if len(cards) == 0 {
		return r.styles.Hidden.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Gold {
			parts[i] = r.styles.GoldCard.Render(c.String())
		} else {
			parts[i] = r.styles.Card.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

// View writes the session as seen by v.You.
func (r *Renderer) View(v *game.GameView) {
	fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf("turn %d  %s", v.Turn, v.Round)))
	fmt.Fprintf(r.w, "%s %d  %s %d%%\n", r.styles.Label.Render("pool"), v.Pool, r.styles.Label.Render("rake"), v.RakePercent)
	fmt.Fprintf(r.w, "%s %s\n", r.styles.Label.Render("river"), r.Cards(v.River))

	for _, p := range v.Players {
		name := p.Addr
		if p.Addr == v.You {
			name += " (you)"
		}
		switch {
		case p.Addr == v.WinnerForTurn:
			name = r.styles.Winner.Render(name)
		case p.Folded:
			name = r.styles.Folded.Render(name)
		}
		fmt.Fprintf(r.w, "  %s hp=%d chips=%d bet=%d/%d last=%s", name, p.HP, p.Chips, p.Bet, p.Bet2, p.LastAction)
		if p.Addr == v.You {
			fmt.Fprintf(r.w, " hand=%s", r.Cards(p.Hand))
		}
		fmt.Fprintln(r.w)
	}

	for _, w := range v.Words {
		if !w.Visible {
			fmt.Fprintf(r.w, "  %s %s\n", w.Player, r.styles.Hidden.Render("(hidden word)"))
			continue
		}
		fmt.Fprintf(r.w, "  %s %s %s=%d\n", w.Player, r.Cards(w.Cards), w.Word, w.Score)
	}

	if v.WinnerForTurn != "" {
		fmt.Fprintf(r.w, "%s %s\n", r.styles.Label.Render("turn winner"), r.styles.Winner.Render(v.WinnerForTurn))
	}
	if v.Winner != "" {
		fmt.Fprintf(r.w, "%s %s\n", r.styles.Label.Render("session winner"), r.styles.Winner.Render(v.Winner))
	}
}

// Outcome writes a concluded session's final balances.
func (r *Renderer) Outcome(o *game.Outcome) {
	fmt.Fprintf(r.w, "%s %s after %d turns\n", r.styles.Label.Render("winner"), r.styles.Winner.Render(o.Winner), o.Turns)
	for _, b := range o.Balances {
		fmt.Fprintf(r.w, "  %s %d\n", b.Addr, b.Chips)
	}
}

// JoinStatus writes whether a seat is free.
func (r *Renderer) JoinStatus(s game.JoinStatus) {
	fmt.Fprintf(r.w, "can_join=%t players=%d/%d password=%t\n", s.CanJoin, s.Players, s.MaxPlayers, s.RequiresPassword)
}

// Effects writes one line per effect.
func (r *Renderer) Effects(effects []game.Effect) {
	for _, e := range effects {
		fmt.Fprintln(r.w, r.styles.Effect.Render(Effect(e)))
	}
}

// Effect formats a single effect.
func Effect(e game.Effect) string {
	switch e := e.(type) {
	case game.Transfer:
		return fmt.Sprintf("transfer %d%s to %s", e.Amount, e.Denom, e.To)
	case game.Notify:
		keys := make([]string, 0, len(e.Attributes))
		for k := range e.Attributes {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		var b strings.Builder
		fmt.Fprintf(&b, "notify %s %s", e.Target, e.Event)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%s", k, e.Attributes[k])
		}
		return b.String()
	default:
		return fmt.Sprintf("%T", e)
	}
}
