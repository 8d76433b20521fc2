package model

// DeckSize is the number of cards in a freshly generated deck
const DeckSize = 52

// Deck is an ordered sequence of cards. The top of the deck is the end
// of the slice; cards are removed (not copied) when dealt, so a card
// belongs to at most one hand at a time.
type Deck struct {
	Cards []Card `json:"cards"`
}

// NewDeck generates an unshuffled 52-card deck, one card per rank and
// suit. Callers shuffle it through their random source.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return &Deck{Cards: cards}
}

// DealTop removes and returns the top card. Fails with ErrEmptyDeck when
// no cards remain; callers are expected to check Remaining or regenerate
// first.
func (d *Deck) DealTop() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
