// Package script replays a session from an HCL file. Command blocks are labelled with
// the sender and run in source order:
//
//	session {
//	  password   = "open sesame"
//	  block_time = 1700000000
//	}
//
//	join "alice" {
//	  secret   = 11
//	  funds    = 10000000
//	  password = "open sesame"
//	}
//	bet "alice" { amount = 1000000 }
//	check "bob" { expect = "phase" }
//
// Every command block accepts block_time, funds, denom and expect. expect names the
// rejection kind the step must fail with (authorization, phase, validation, lifecycle).
package script

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/wordpot/internal/game"
)

// Script is a parsed replay file.
type Script struct {
	Session SessionSpec
	Steps   []Step
}

// SessionSpec configures the session the script runs against.
type SessionSpec struct {
	Password    string `hcl:"password,optional"`
	LevelDesign uint64 `hcl:"level_design,optional"`
	BlockTime   uint64 `hcl:"block_time,optional"`
}

// Step is one command with its caller context.
type Step struct {
	Sender    string
	BlockTime uint64 // 0 uses the session default
	Funds     uint64
	Denom     string // empty uses the rules denom
	Command   game.Command
	Expect    error // nil when the command must succeed
	Range     hcl.Range
}

// common holds the attributes every command block accepts.
type common struct {
	BlockTime uint64   `hcl:"block_time,optional"`
	Funds     uint64   `hcl:"funds,optional"`
	Denom     string   `hcl:"denom,optional"`
	Expect    string   `hcl:"expect,optional"`
	Remain    hcl.Body `hcl:",remain"`
}

type (
	joinArgs struct {
		Secret    uint64   `hcl:"secret"`
		Password  string   `hcl:"password,optional"`
		Cosmetics []string `hcl:"cosmetics,optional"`
	}
	amountArgs struct {
		Amount uint64 `hcl:"amount"`
	}
	putDownArgs struct {
		Indexes          []uint8 `hcl:"indexes"`
		OpenedDictionary bool    `hcl:"opened_dictionary,optional"`
	}
	noArgs struct{}
)

var commandBlocks = []string{
	"join", "buy_chips", "bet", "match", "fold", "check", "leave", "put_down_card", "request_next_turn",
}

var expectKinds = map[string]error{
	"authorization": game.ErrAuthorization,
	"phase":         game.ErrPhase,
	"validation":    game.ErrValidation,
	"lifecycle":     game.ErrLifecycle,
}

func schema() *hcl.BodySchema {
	s := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "session"}},
	}
	for _, name := range commandBlocks {
		s.Blocks = append(s.Blocks, hcl.BlockHeaderSchema{Type: name, LabelNames: []string{"sender"}})
	}
	return s
}

// ParseFile reads and parses a script file.
func ParseFile(filename string) (*Script, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(src, filename)
}

// Parse parses script source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Script, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script: %s", diags.Error())
	}
	content, diags := file.Body.Content(schema())
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script: %s", diags.Error())
	}

	sc := &Script{}
	seenSession := false
	for _, block := range content.Blocks {
		if block.Type == "session" {
			if seenSession {
				return nil, fmt.Errorf("%s: duplicate session block", block.DefRange)
			}
			seenSession = true
			if diags := gohcl.DecodeBody(block.Body, nil, &sc.Session); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode session: %s", diags.Error())
			}
			continue
		}
		step, err := decodeStep(block)
		if err != nil {
			return nil, err
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

func decodeStep(block *hcl.Block) (Step, error) {
	var c common
	if diags := gohcl.DecodeBody(block.Body, nil, &c); diags.HasErrors() {
		return Step{}, fmt.Errorf("failed to decode %s: %s", block.Type, diags.Error())
	}
	step := Step{
		Sender:    block.Labels[0],
		BlockTime: c.BlockTime,
		Funds:     c.Funds,
		Denom:     c.Denom,
		Range:     block.DefRange,
	}
	if c.Expect != "" {
		kind, ok := expectKinds[c.Expect]
		if !ok {
			return Step{}, fmt.Errorf("%s: unknown expect %q", block.DefRange, c.Expect)
		}
		step.Expect = kind
	}

	var diags hcl.Diagnostics
	switch block.Type {
	case "join":
		var a joinArgs
		diags = gohcl.DecodeBody(c.Remain, nil, &a)
		step.Command = game.Join{Secret: a.Secret, Password: a.Password, Cosmetics: a.Cosmetics}
	case "bet", "match":
		var a amountArgs
		diags = gohcl.DecodeBody(c.Remain, nil, &a)
		if block.Type == "bet" {
			step.Command = game.Bet{Amount: a.Amount}
		} else {
			step.Command = game.Match{Amount: a.Amount}
		}
	case "put_down_card":
		var a putDownArgs
		diags = gohcl.DecodeBody(c.Remain, nil, &a)
		step.Command = game.PutDownCard{Indexes: a.Indexes, OpenedDictionary: a.OpenedDictionary}
	default:
		diags = gohcl.DecodeBody(c.Remain, nil, &noArgs{})
		step.Command = bareCommands[block.Type]
	}
	if diags.HasErrors() {
		return Step{}, fmt.Errorf("failed to decode %s: %s", block.Type, diags.Error())
	}
	return step, nil
}

var bareCommands = map[string]game.Command{
	"buy_chips":         game.BuyChips{},
	"fold":              game.Fold{},
	"check":             game.Check{},
	"leave":             game.Leave{},
	"request_next_turn": game.RequestNextTurn{},
}
