package game

import (
	"github.com/DedS3t/cashflow-backend/app/models"
	uuid "github.com/satori/go.uuid"
)

const (
	CharityPercent  = 10
	CharityTurns    = 3
	CharityBonus    = 1000
	DownsizePenalty = 1000
	DownsizeTurns   = 2
	ChildExpense    = 200
)

// updatePlayer runs fn on a private copy of the player and swaps the copy in
// only when fn returns Ok.
func updatePlayer(s models.GameState, id int, fn func(p *models.Player) Result) (models.GameState, Result) {
	i := s.PlayerIndex(id)
	if i == -1 {
		return s, PlayerNotFound
	}
	p := s.Players[i].Clone()
	if res := fn(&p); res != Ok {
		return s, res
	}
	return s.WithPlayer(p), Ok
}

// AddAsset appends the asset and pays its value. Overdraft is allowed.
func AddAsset(s models.GameState, id int, asset models.Asset) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Assets = append(p.Assets, asset)
		p.Cash -= asset.Value
		return Ok
	})
}

func AddLiability(s models.GameState, id int, liability models.Liability) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Liabilities = append(p.Liabilities, liability)
		p.Cash -= liability.Amount
		return Ok
	})
}

func ProcessPayday(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Cash += p.Income - p.Expenses
		return Ok
	})
}

// CharityAmount is the donation asked of a player: 10% of income, rounded down.
func CharityAmount(p models.Player) int {
	return floorDiv(p.Income*CharityPercent, 100)
}

func ProcessCharity(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		amount := CharityAmount(*p)
		if p.Cash < amount {
			return InsufficientFunds
		}
		p.Cash -= amount
		p.CharityTurns = CharityTurns
		return Ok
	})
}

func ProcessCharityBenefit(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		if p.CharityTurns <= 0 {
			return NoChange
		}
		p.Cash += CharityBonus
		p.CharityTurns--
		return Ok
	})
}

func ProcessDownsize(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.IsDownsized = true
		p.DownsizedTurns = 0
		p.Income = 0
		p.Cash -= DownsizePenalty
		return Ok
	})
}

func EndDownsize(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.IsDownsized = false
		p.DownsizedTurns = 0
		p.Income = p.Salary
		return Ok
	})
}

// TickDownsize counts one skipped turn and restores the salary once the
// player has sat out DownsizeTurns turns.
func TickDownsize(s models.GameState, id int) (models.GameState, Result) {
	p, ok := s.Player(id)
	if !ok {
		return s, PlayerNotFound
	}
	if !p.IsDownsized {
		return s, NoChange
	}
	if p.DownsizedTurns+1 >= DownsizeTurns {
		return EndDownsize(s, id)
	}
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.DownsizedTurns++
		return Ok
	})
}

func ProcessChild(s models.GameState, id int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Children++
		p.ChildExpenses += ChildExpense
		p.Expenses += ChildExpense
		p.TotalExpenses += ChildExpense
		return Ok
	})
}

// PurchaseDream debits the cost and records the dream, or does neither.
func PurchaseDream(s models.GameState, id int, dream models.Dream) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		if p.Cash < dream.Cost {
			return InsufficientFunds
		}
		p.Cash -= dream.Cost
		d := dream
		p.Dream = &d
		return Ok
	})
}

// ApplyDoodad charges an expense card. Cards aimed at children cost nothing
// for players without any; a financed doodad becomes a credit liability.
func ApplyDoodad(s models.GameState, id int, card models.Card) (models.GameState, Result) {
	if card.Type != models.CardDoodad {
		return s, InvalidCard
	}
	return updatePlayer(s, id, func(p *models.Player) Result {
		if card.Child && p.Children == 0 {
			return NoChange
		}
		p.Cash -= card.Cost
		if card.Loan > 0 {
			p.Liabilities = append(p.Liabilities, models.Liability{
				Id:      NewId(),
				Type:    models.LiabilityCredit,
				Name:    card.Title,
				Amount:  card.Loan,
				Payment: card.Payment,
			})
			p.Expenses += card.Payment
			p.TotalExpenses += card.Payment
		}
		return Ok
	})
}

// BuyDeal turns a small or big deal into an owned asset. The buyer pays the
// down payment (or the full cost when there is none); any mortgage on the card
// is recorded as a liability linked to the asset. units only matters for
// securities, which are bought at the card price per unit.
func BuyDeal(s models.GameState, id int, card models.Card, units int) (models.GameState, Result) {
	if card.Type != models.CardSmallDeal && card.Type != models.CardBigDeal {
		return s, InvalidCard
	}
	assetType := dealAssetType(card)
	if assetType == models.AssetStock && units <= 0 {
		return s, InvalidCard
	}
	return updatePlayer(s, id, func(p *models.Player) Result {
		asset := models.Asset{
			Id:   NewId(),
			Type: assetType,
			Name: card.Title,
		}
		switch {
		case assetType == models.AssetStock:
			asset.Value = card.Price * units
			p.Cash -= asset.Value
		case card.DownPayment > 0:
			asset.Value = card.Cost
			p.Cash -= card.DownPayment
		default:
			asset.Value = card.Cost
			p.Cash -= card.Cost
		}
		if card.CashFlow != 0 {
			income := card.CashFlow
			asset.Income = &income
		}
		if card.Mortgage > 0 {
			mortgage := models.Liability{
				Id:     NewId(),
				Type:   models.LiabilityMortgage,
				Name:   card.Title,
				Amount: card.Mortgage,
			}
			asset.Liability = mortgage.Id
			p.Liabilities = append(p.Liabilities, mortgage)
		}
		p.Assets = append(p.Assets, asset)
		return Ok
	})
}

func dealAssetType(card models.Card) models.AssetType {
	switch {
	case card.Symbol != "":
		return models.AssetStock
	case card.LandType == "business", card.LandType == "car wash", card.LandType == "limited":
		return models.AssetBusiness
	case card.LandType == "" && card.Mortgage == 0:
		return models.AssetCoin
	default:
		return models.AssetRealEstate
	}
}

// CheckBankruptcy flags the player when net worth is negative and no cash is
// left. Once every player is bankrupt the game ends without a winner.
func CheckBankruptcy(s models.GameState, id int) (models.GameState, bool) {
	p, ok := s.Player(id)
	if !ok {
		return s, false
	}
	bankrupt := p.NetWorth() < 0 && p.Cash <= 0
	if !bankrupt || p.IsBankrupt {
		return s, bankrupt
	}
	p = p.Clone()
	p.IsBankrupt = true
	s = s.WithPlayer(p)

	for _, other := range s.Players {
		if !other.IsBankrupt {
			return s, true
		}
	}
	s.GameOver = true
	s.Winner = nil
	return s, true
}

// CheckFastTrackEligibility compares asset income with total expenses and
// marks the player for the fast track the first time it is enough.
func CheckFastTrackEligibility(s models.GameState, id int) (models.GameState, bool) {
	p, ok := s.Player(id)
	if !ok {
		return s, false
	}
	passive := p.AssetIncome()
	eligible := passive >= p.TotalExpenses
	if eligible && !p.FastTrack {
		p = p.Clone()
		p.FastTrack = true
		p.PassiveIncome = passive
		s = s.WithPlayer(p)
	}
	return s, eligible
}

func CheckWinCondition(s models.GameState, id int) (models.GameState, bool) {
	p, ok := s.Player(id)
	if !ok || !p.FastTrack || p.Dream == nil {
		return s, false
	}
	winner := id
	s.GameOver = true
	s.Winner = &winner
	return s, true
}

func NewId() string {
	return uuid.NewV4().String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
