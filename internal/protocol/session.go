package protocol

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/lox/wordpot/internal/game"
)

// FormatVersion is written into every session blob.
const FormatVersion = 1

// AppendSession appends the msgpack encoding of s to b.
func AppendSession(b []byte, s *game.Session) []byte {
	b = msgp.AppendMapHeader(b, 9)
	b = msgp.AppendString(b, "version")
	b = msgp.AppendUint8(b, FormatVersion)
	b = msgp.AppendString(b, "players")
	b = msgp.AppendArrayHeader(b, uint32(len(s.Players)))
	for _, p := range s.Players {
		b = appendPlayer(b, p)
	}
	b = msgp.AppendString(b, "deck")
	b = appendCards(b, s.Deck)
	b = msgp.AppendString(b, "board")
	b = appendBoard(b, &s.Board)
	b = msgp.AppendString(b, "winner")
	b = msgp.AppendString(b, s.Winner)
	b = msgp.AppendString(b, "password")
	b = msgp.AppendString(b, s.Password)
	b = msgp.AppendString(b, "has_password")
	b = msgp.AppendBool(b, s.HasPassword)
	b = msgp.AppendString(b, "started_time")
	b = msgp.AppendUint64(b, s.StartedTime)
	b = msgp.AppendString(b, "level_design")
	b = msgp.AppendUint64(b, s.LevelDesign)
	return b
}

func appendPlayer(b []byte, p *game.Player) []byte {
	b = msgp.AppendMapHeader(b, 13)
	b = msgp.AppendString(b, "addr")
	b = msgp.AppendString(b, p.Addr)
	b = msgp.AppendString(b, "secret")
	b = msgp.AppendUint64(b, p.Secret)
	b = msgp.AppendString(b, "hand")
	b = appendCards(b, p.Hand)
	b = msgp.AppendString(b, "hp")
	b = msgp.AppendUint8(b, p.HP)
	b = msgp.AppendString(b, "bet")
	b = msgp.AppendUint64(b, p.Bet)
	b = msgp.AppendString(b, "bet2")
	b = msgp.AppendUint64(b, p.Bet2)
	b = msgp.AppendString(b, "folded")
	b = msgp.AppendBool(b, p.Folded)
	b = msgp.AppendString(b, "checked")
	b = msgp.AppendBool(b, p.Checked)
	b = msgp.AppendString(b, "checked2")
	b = msgp.AppendBool(b, p.Checked2)
	b = msgp.AppendString(b, "opened_dictionary")
	b = msgp.AppendBool(b, p.OpenedDictionary)
	b = msgp.AppendString(b, "last_action")
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendUint8(b, uint8(p.LastAction.Kind))
	b = msgp.AppendUint64(b, p.LastAction.Amount)
	b = msgp.AppendString(b, "chips")
	b = msgp.AppendUint64(b, p.Chips)
	b = msgp.AppendString(b, "cosmetics")
	b = msgp.AppendArrayHeader(b, uint32(len(p.Cosmetics)))
	for _, c := range p.Cosmetics {
		b = msgp.AppendString(b, c)
	}
	return b
}

func appendBoard(b []byte, bd *game.Board) []byte {
	b = msgp.AppendMapHeader(b, 7)
	b = msgp.AppendString(b, "round")
	b = msgp.AppendUint8(b, uint8(bd.Round))
	b = msgp.AppendString(b, "pool")
	b = msgp.AppendUint64(b, bd.Pool)
	b = msgp.AppendString(b, "rake_percent")
	b = msgp.AppendUint64(b, bd.RakePercent)
	b = msgp.AppendString(b, "river")
	b = appendCards(b, bd.River)
	b = msgp.AppendString(b, "words")
	b = msgp.AppendArrayHeader(b, uint32(len(bd.Words)))
	for _, w := range bd.Words {
		b = msgp.AppendMapHeader(b, 2)
		b = msgp.AppendString(b, "player")
		b = msgp.AppendString(b, w.Player)
		b = msgp.AppendString(b, "cards")
		b = appendCards(b, w.Cards)
	}
	b = msgp.AppendString(b, "winner_for_turn")
	b = msgp.AppendString(b, bd.WinnerForTurn)
	b = msgp.AppendString(b, "turn")
	b = msgp.AppendUint64(b, bd.Turn)
	return b
}

// ReadSession decodes a session from the front of b and returns the remaining bytes.
// Unknown keys are skipped.
func ReadSession(b []byte) (*game.Session, []byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return nil, b, msgp.WrapError(err, "Session")
	}
	s := &game.Session{}
	for range sz {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return nil, b, msgp.WrapError(err, "Session")
		}
		switch string(key) {
		case "version":
			var v uint8
			v, b, err = msgp.ReadUint8Bytes(b)
			if err == nil && v != FormatVersion {
				err = fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
			}
		case "players":
			s.Players, b, err = readPlayers(b)
		case "deck":
			s.Deck, b, err = readCards(b)
		case "board":
			b, err = readBoard(b, &s.Board)
		case "winner":
			s.Winner, b, err = msgp.ReadStringBytes(b)
		case "password":
			s.Password, b, err = msgp.ReadStringBytes(b)
		case "has_password":
			s.HasPassword, b, err = msgp.ReadBoolBytes(b)
		case "started_time":
			s.StartedTime, b, err = msgp.ReadUint64Bytes(b)
		case "level_design":
			s.LevelDesign, b, err = msgp.ReadUint64Bytes(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return nil, b, msgp.WrapError(err, "Session", string(key))
		}
	}
	return s, b, nil
}

func readPlayers(b []byte) ([]*game.Player, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil || n == 0 {
		return nil, b, err
	}
	if n > game.MaxPlayers {
		return nil, b, fmt.Errorf("%d players exceeds the seat limit", n)
	}
	players := make([]*game.Player, 0, n)
	for i := range n {
		p := &game.Player{}
		if b, err = readPlayer(b, p); err != nil {
			return nil, b, msgp.WrapError(err, i)
		}
		players = append(players, p)
	}
	return players, b, nil
}

func readPlayer(b []byte, p *game.Player) ([]byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for range sz {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch string(key) {
		case "addr":
			p.Addr, b, err = msgp.ReadStringBytes(b)
		case "secret":
			p.Secret, b, err = msgp.ReadUint64Bytes(b)
		case "hand":
			p.Hand, b, err = readCards(b)
		case "hp":
			p.HP, b, err = msgp.ReadUint8Bytes(b)
		case "bet":
			p.Bet, b, err = msgp.ReadUint64Bytes(b)
		case "bet2":
			p.Bet2, b, err = msgp.ReadUint64Bytes(b)
		case "folded":
			p.Folded, b, err = msgp.ReadBoolBytes(b)
		case "checked":
			p.Checked, b, err = msgp.ReadBoolBytes(b)
		case "checked2":
			p.Checked2, b, err = msgp.ReadBoolBytes(b)
		case "opened_dictionary":
			p.OpenedDictionary, b, err = msgp.ReadBoolBytes(b)
		case "last_action":
			b, err = readLastAction(b, &p.LastAction)
		case "chips":
			p.Chips, b, err = msgp.ReadUint64Bytes(b)
		case "cosmetics":
			p.Cosmetics, b, err = readStrings(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, msgp.WrapError(err, string(key))
		}
	}
	return b, nil
}

func readLastAction(b []byte, a *game.LastAction) ([]byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	if n != 2 {
		return b, fmt.Errorf("last action has %d elements, want 2", n)
	}
	var kind uint8
	if kind, b, err = msgp.ReadUint8Bytes(b); err != nil {
		return b, err
	}
	if kind > uint8(game.ActionChoseWord) {
		return b, fmt.Errorf("unknown action kind %d", kind)
	}
	a.Kind = game.ActionKind(kind)
	a.Amount, b, err = msgp.ReadUint64Bytes(b)
	return b, err
}

func readStrings(b []byte) ([]string, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil || n == 0 {
		return nil, b, err
	}
	out := make([]string, 0, n)
	for range n {
		var s string
		if s, b, err = msgp.ReadStringBytes(b); err != nil {
			return nil, b, err
		}
		out = append(out, s)
	}
	return out, b, nil
}

func readBoard(b []byte, bd *game.Board) ([]byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for range sz {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch string(key) {
		case "round":
			var r uint8
			r, b, err = msgp.ReadUint8Bytes(b)
			bd.Round = game.Round(r)
			if err == nil && !bd.Round.Valid() {
				err = fmt.Errorf("unknown round %d", r)
			}
		case "pool":
			bd.Pool, b, err = msgp.ReadUint64Bytes(b)
		case "rake_percent":
			bd.RakePercent, b, err = msgp.ReadUint64Bytes(b)
			if err == nil && bd.RakePercent > 100 {
				err = fmt.Errorf("rake percent %d above 100", bd.RakePercent)
			}
		case "river":
			bd.River, b, err = readCards(b)
		case "words":
			bd.Words, b, err = readWords(b)
		case "winner_for_turn":
			bd.WinnerForTurn, b, err = msgp.ReadStringBytes(b)
		case "turn":
			bd.Turn, b, err = msgp.ReadUint64Bytes(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, msgp.WrapError(err, string(key))
		}
	}
	return b, nil
}

func readWords(b []byte) ([]game.Word, []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil || n == 0 {
		return nil, b, err
	}
	out := make([]game.Word, 0, n)
	for i := range n {
		var w game.Word
		var sz uint32
		if sz, b, err = msgp.ReadMapHeaderBytes(b); err != nil {
			return nil, b, msgp.WrapError(err, i)
		}
		for range sz {
			var key []byte
			if key, b, err = msgp.ReadMapKeyZC(b); err != nil {
				return nil, b, msgp.WrapError(err, i)
			}
			switch string(key) {
			case "player":
				w.Player, b, err = msgp.ReadStringBytes(b)
			case "cards":
				w.Cards, b, err = readCards(b)
			default:
				b, err = msgp.Skip(b)
			}
			if err != nil {
				return nil, b, msgp.WrapError(err, i, string(key))
			}
		}
		out = append(out, w)
	}
	return out, b, nil
}
