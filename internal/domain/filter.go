package domain

// FilterKind selects how flashcards are matched.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterByID
	FilterByDeck
)

func (k FilterKind) String() string {
	switch k {
	case FilterByID:
		return "id"
	case FilterByDeck:
		return "deck"
	default:
		return "all"
	}
}

// Filter is one of ByID(id), ByDeck(name) or All.
type Filter struct {
	kind  FilterKind
	value string
}

// All matches every flashcard.
func All() Filter { return Filter{kind: FilterAll} }

// ByID matches the flashcard with the given storage id.
func ByID(id string) Filter { return Filter{kind: FilterByID, value: id} }

// ByDeck matches the flashcards of one deck.
func ByDeck(deckID string) Filter { return Filter{kind: FilterByDeck, value: deckID} }

// NewFilter resolves optional query parameters. The id wins when both are set.
func NewFilter(flashcardID, deckName string) Filter {
	switch {
	case flashcardID != "":
		return ByID(flashcardID)
	case deckName != "":
		return ByDeck(deckName)
	default:
		return All()
	}
}

func (f Filter) Kind() FilterKind { return f.kind }

// Value returns the id or deck name; empty for All.
func (f Filter) Value() string { return f.value }
