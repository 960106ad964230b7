package slots

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
)

// ReferenceBet is the stake the triple paytable is quoted against.
// Payouts for other stakes scale linearly and round down.
const ReferenceBet int64 = 50

// bigWinMultiple is the payout/bet ratio above which a win counts as big
const bigWinMultiple = 5

// triplePayouts is the three-of-a-kind paytable in credits on ReferenceBet
var triplePayouts = map[model.Symbol]int64{
	model.SymbolCherry:  500,
	model.SymbolLemon:   750,
	model.SymbolOrange:  1000,
	model.SymbolGrapes:  1250,
	model.SymbolBell:    2000,
	model.SymbolStar:    3000,
	model.SymbolDiamond: 5000,
	model.SymbolSeven:   10000,
}

// pairMultipliers pays exactly-two-of-a-kind as a multiple of the stake
var pairMultipliers = map[model.Symbol]decimal.Decimal{
	model.SymbolSeven:   decimal.NewFromInt(2),
	model.SymbolDiamond: decimal.RequireFromString("1.5"),
	model.SymbolBell:    decimal.RequireFromString("1.25"),
	model.SymbolStar:    decimal.NewFromInt(1),
}

var defaultPairMultiplier = decimal.RequireFromString("0.5")

// Service spins the slot machine
type Service struct {
	random random.Random
}

// New creates a new slot machine service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Spin draws three independent reels and evaluates them for the given bet.
// The bet is assumed to be validated by the caller.
func (s *Service) Spin(bet int64) model.Outcome {
	var reels [3]model.Symbol
	for i := range reels {
		reels[i] = model.SlotSymbols[s.random.Intn(len(model.SlotSymbols))]
	}
	return Evaluate(reels, bet)
}

// Evaluate computes the outcome of a fixed set of reels
func Evaluate(reels [3]model.Symbol, bet int64) model.Outcome {
	details := &model.SlotDetails{Reels: reels, Match: model.SlotMatchNone}
	var payout int64

	if reels[0] == reels[1] && reels[1] == reels[2] {
		details.Match = model.SlotMatchTriple
		details.Matched = reels[0]
		payout = TriplePayout(reels[0], bet)
	} else if sym, ok := pairSymbol(reels); ok {
		details.Match = model.SlotMatchPair
		details.Matched = sym
		payout = PairPayout(sym, bet)
	}

	details.Tier = tier(details, payout, bet)

	outcome := model.Outcome{
		RoundID: uuid.NewString(),
		Game:    model.GameSlots,
		Bet:     bet,
		Payout:  payout,
		Won:     payout > 0,
		Details: details,
	}
	if details.Tier == model.SlotTierJackpot {
		outcome.Achievements = []model.AchievementID{model.AchievementJackpot}
	}
	return outcome
}

// TriplePayout is the three-of-a-kind payout for sym at the given stake
func TriplePayout(sym model.Symbol, bet int64) int64 {
	return triplePayouts[sym] * bet / ReferenceBet
}

// PairPayout is the exactly-two-of-a-kind payout for sym at the given stake
func PairPayout(sym model.Symbol, bet int64) int64 {
	mult, ok := pairMultipliers[sym]
	if !ok {
		mult = defaultPairMultiplier
	}
	return decimal.NewFromInt(bet).Mul(mult).Floor().IntPart()
}

// JackpotPayout is the top-tier payout at the given stake
func JackpotPayout(bet int64) int64 {
	return TriplePayout(model.SymbolSeven, bet)
}

// pairSymbol returns the symbol that appears exactly twice, if any
func pairSymbol(reels [3]model.Symbol) (model.Symbol, bool) {
	switch {
	case reels[0] == reels[1]:
		return reels[0], true
	case reels[0] == reels[2]:
		return reels[0], true
	case reels[1] == reels[2]:
		return reels[1], true
	}
	return 0, false
}

func tier(d *model.SlotDetails, payout, bet int64) model.SlotTier {
	switch {
	case d.Match == model.SlotMatchTriple && d.Matched == model.SymbolSeven:
		return model.SlotTierJackpot
	case payout > bet*bigWinMultiple:
		return model.SlotTierBigWin
	case payout > 0:
		return model.SlotTierWin
	}
	return model.SlotTierLose
}
