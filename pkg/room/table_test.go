package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/game"
)

var testParameters = game.GameParameters{
	SmallBlind: 25,
	BigBlind:   50,
	MaxPlayers: 9,
	TimeToAct:  30 * time.Second,
}

func waitForKey(t *testing.T, c *Client, key string) *Response {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-c.SendChan():
			resp, ok := msg.(*Response)
			if !ok {
				t.Fatalf("unexpected message type: %T", msg)
			}

			if resp.Key == key {
				return resp
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q response", key)
			return nil
		}
	}
}

func waitForGameView(t *testing.T, c *Client, ready func(view *game.ClientView) bool) *game.ClientView {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-c.SendChan():
			resp, ok := msg.(*Response)
			if !ok || resp.Key != "game" {
				continue
			}

			view := resp.Data.(*game.ClientView)
			if ready(view) {
				return view
			}
		case <-deadline:
			t.Fatal("timed out waiting for game view")
			return nil
		}
	}
}

func TestTable_AddClient(t *testing.T) {
	tbl, err := NewTable(&PitBoss{}, "test", testParameters)
	assert.NoError(t, err)

	c := NewClient(nil, "a", "test")
	c2 := NewClient(nil, "b", "test")

	tbl.AddClient(c)
	tbl.AddClient(c2)

	assert.False(t, tbl.RemoveClient(c))
	assert.True(t, tbl.RemoveClient(c2))
}

func TestNewTable_BadParameters(t *testing.T) {
	_, err := NewTable(&PitBoss{}, "test", game.GameParameters{})
	assert.Error(t, err)
}

func TestTable_PlayHand(t *testing.T) {
	a := assert.New(t)

	tbl, err := NewTable(&PitBoss{}, "test", testParameters)
	a.NoError(err)
	tbl.StartShift()
	defer tbl.EndShift()

	alice := NewClient(nil, "alice", "test")
	bob := NewClient(nil, "bob", "test")
	tbl.AddClient(alice)
	tbl.AddClient(bob)

	tbl.ReceivedMessage(alice, &PayloadIn{
		Context: "join-1",
		Action:  game.Action{Kind: game.ActionJoinTable, Name: "Alice", Buyin: 1000},
	})
	a.Equal("join-1", waitForKey(t, alice, "ok").Context)

	tbl.ReceivedMessage(alice, &PayloadIn{
		Context: "sit-1",
		Action:  game.Action{Kind: game.ActionSitDown, SeatNumber: 0},
	})
	a.Equal("sit-1", waitForKey(t, alice, "ok").Context)

	tbl.ReceivedMessage(bob, &PayloadIn{
		Context: "join-2",
		Action:  game.Action{Kind: game.ActionJoinTable, Name: "Bob", Buyin: 1000},
	})
	waitForKey(t, bob, "ok")

	tbl.ReceivedMessage(bob, &PayloadIn{
		Context: "sit-2",
		Action:  game.Action{Kind: game.ActionSitDown, SeatNumber: 1},
	})
	waitForKey(t, bob, "ok")

	// once both players are seated a hand deals and both clients hear about it
	aliceView := waitForGameView(t, alice, func(view *game.ClientView) bool {
		return view.GameInProgress
	})
	bobView := waitForGameView(t, bob, func(view *game.ClientView) bool {
		return view.GameInProgress
	})

	a.Equal(game.StagePreFlop, aliceView.Stage)
	a.Equal(75, aliceView.TotalPot)

	// each client only sees its own hole cards
	a.NotEmpty(aliceView.HeroPlayerUUID)
	a.NotEmpty(bobView.HeroPlayerUUID)
	a.NotEqual(aliceView.HeroPlayerUUID, bobView.HeroPlayerUUID)
	a.Len(aliceView.Players[aliceView.HeroPlayerUUID].HoleCards, 2)
	a.Empty(aliceView.Players[bobView.HeroPlayerUUID].HoleCards)
	a.Len(bobView.Players[bobView.HeroPlayerUUID].HoleCards, 2)
	a.Empty(bobView.Players[aliceView.HeroPlayerUUID].HoleCards)

	// the ledger saw both buy-ins
	rows := tbl.LedgerRows()
	a.Len(rows, 2)
	a.Equal(1000, rows[0].Buyin)
	a.Equal(1000, rows[1].Buyin)
}

func TestTable_RejectedAction(t *testing.T) {
	a := assert.New(t)

	tbl, err := NewTable(&PitBoss{}, "test", testParameters)
	a.NoError(err)
	tbl.StartShift()
	defer tbl.EndShift()

	alice := NewClient(nil, "alice", "test")
	tbl.AddClient(alice)

	tbl.ReceivedMessage(alice, &PayloadIn{
		Context: "stand-1",
		Action:  game.Action{Kind: game.ActionStandUp},
	})

	resp := waitForKey(t, alice, "error")
	a.Equal("stand-1", resp.Context)
	a.NotEmpty(resp.Value)
}
