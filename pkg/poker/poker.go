// Package poker ranks Texas Hold'em hands. It adapts the paulhankin/poker
// seven-card evaluator to the deck package's card model.
package poker

import (
	"fmt"

	hankin "github.com/paulhankin/poker"

	"holdem-server/pkg/deck"
)

// Hand is the best five-card hand makeable from a player's hole cards and the
// board. Higher Strength beats lower Strength; equal Strength is a chop.
type Hand struct {
	Strength    int16  `json:"strength"`
	Description string `json:"description"`
}

var suitIndex = map[deck.Suit]uint8{
	deck.Clubs:    0,
	deck.Diamonds: 1,
	deck.Hearts:   2,
	deck.Spades:   3,
}

func evalCard(c deck.Card) (hankin.Card, error) {
	index, ok := suitIndex[c.Suit]
	if !ok {
		return 0, fmt.Errorf("unknown suit: %s", c.Suit)
	}

	return hankin.MakeCard(hankin.Suit(index), hankin.Rank(c.Rank))
}

// BestHand evaluates the best five-card hand from two hole cards and a
// five-card board.
func BestHand(holeCards, board []deck.Card) (Hand, error) {
	if len(holeCards) != 2 {
		return Hand{}, fmt.Errorf("expected 2 hole cards, got %d", len(holeCards))
	}

	if len(board) != 5 {
		return Hand{}, fmt.Errorf("expected 5 board cards, got %d", len(board))
	}

	var cards [7]hankin.Card
	for i, c := range append(append([]deck.Card{}, board...), holeCards...) {
		card, err := evalCard(c)
		if err != nil {
			return Hand{}, err
		}

		cards[i] = card
	}

	strength := hankin.Eval7(&cards)
	description, err := hankin.Describe(cards[:])
	if err != nil {
		return Hand{}, err
	}

	return Hand{
		Strength:    strength,
		Description: description,
	}, nil
}

// Winners returns the indices of the hands tied for the highest strength
func Winners(hands []Hand) []int {
	var best int16
	var winners []int
	for i, hand := range hands {
		if hand.Strength > best || winners == nil {
			best = hand.Strength
			winners = []int{i}
		} else if hand.Strength == best {
			winners = append(winners, i)
		}
	}

	return winners
}
