package model

// Symbol is a slot reel symbol. Symbols are ordered by triple payout tier,
// lowest first.
type Symbol int

const (
	SymbolCherry Symbol = iota
	SymbolLemon
	SymbolOrange
	SymbolGrapes
	SymbolBell
	SymbolStar
	SymbolDiamond
	SymbolSeven
)

// SlotSymbols is the reel alphabet; each reel draws uniformly from it
var SlotSymbols = []Symbol{
	SymbolCherry, SymbolLemon, SymbolOrange, SymbolGrapes,
	SymbolBell, SymbolStar, SymbolDiamond, SymbolSeven,
}

var symbolNames = map[Symbol]string{
	SymbolCherry:  "cherry",
	SymbolLemon:   "lemon",
	SymbolOrange:  "orange",
	SymbolGrapes:  "grapes",
	SymbolBell:    "bell",
	SymbolStar:    "star",
	SymbolDiamond: "diamond",
	SymbolSeven:   "seven",
}

var symbolEmoji = map[Symbol]string{
	SymbolCherry:  "🍒",
	SymbolLemon:   "🍋",
	SymbolOrange:  "🍊",
	SymbolGrapes:  "🍇",
	SymbolBell:    "🔔",
	SymbolStar:    "⭐",
	SymbolDiamond: "💎",
	SymbolSeven:   "7️⃣",
}

// String returns the lowercase symbol name
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}

// Emoji returns the display glyph used by front-ends
func (s Symbol) Emoji() string {
	return symbolEmoji[s]
}

// SlotMatch describes how the three reels matched
type SlotMatch string

const (
	SlotMatchNone   SlotMatch = "none"
	SlotMatchPair   SlotMatch = "pair"
	SlotMatchTriple SlotMatch = "triple"
)

// SlotTier classifies a spin result for presentation
type SlotTier string

const (
	SlotTierLose    SlotTier = "lose"
	SlotTierWin     SlotTier = "win"
	SlotTierBigWin  SlotTier = "big_win"
	SlotTierJackpot SlotTier = "jackpot"
)

// SlotDetails is the game-specific part of a slot Outcome
type SlotDetails struct {
	Reels   [3]Symbol
	Match   SlotMatch
	Matched Symbol // meaningful only when Match != SlotMatchNone
	Tier    SlotTier
}
