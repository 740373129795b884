package models

type AssetType string

const (
	AssetStock      AssetType = "stock"
	AssetRealEstate AssetType = "realEstate"
	AssetBusiness   AssetType = "business"
	AssetCoin       AssetType = "coin"
	AssetPersonal   AssetType = "personal"
)

type LiabilityType string

const (
	LiabilityLoan     LiabilityType = "loan"
	LiabilityCredit   LiabilityType = "credit"
	LiabilityMortgage LiabilityType = "mortgage"
)

type Asset struct {
	Id        string    `json:"id"`
	Type      AssetType `json:"type"`
	Name      string    `json:"name"`
	Value     int       `json:"value"`
	Income    *int      `json:"income,omitempty"`
	Liability string    `json:"liability,omitempty"` // mortgage id for real estate
}

type Liability struct {
	Id      string        `json:"id"`
	Type    LiabilityType `json:"type"`
	Name    string        `json:"name"`
	Amount  int           `json:"amount"`
	Payment int           `json:"payment"`
}

type Dream struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
	Perk        string `json:"perk,omitempty"`
}

type Player struct {
	Id             int         `json:"id"`
	Name           string      `json:"name"`
	Color          string      `json:"color"`
	Job            string      `json:"job"`
	Insurance      bool        `json:"insurance"`
	Cash           int         `json:"cash"`
	Income         int         `json:"income"`
	Expenses       int         `json:"expenses"`
	Assets         []Asset     `json:"assets"`
	Liabilities    []Liability `json:"liabilities"`
	Position       int         `json:"position"`
	IsDownsized    bool        `json:"isDownsized"`
	DownsizedTurns int         `json:"downsizedTurns"`

	PassiveIncome int    `json:"passiveIncome"`
	TotalExpenses int    `json:"totalExpenses"`
	FastTrack     bool   `json:"fastTrack"`
	Dream         *Dream `json:"dream"`

	CharityTurns  int `json:"charityTurns"`
	Children      int `json:"children"`
	ChildExpenses int `json:"childExpenses"`

	IsBankrupt   bool `json:"isBankrupt"`
	Debt         bool `json:"debt"`
	LoanApproval bool `json:"loanApproval"`

	Salary  int `json:"salary"`
	Savings int `json:"savings"`
}

// PlayerSetup is the per-player input of a new game.
type PlayerSetup struct {
	Name      string `json:"name" validate:"required"`
	Color     string `json:"color"`
	Job       string `json:"job"`
	Insurance bool   `json:"insurance"`
	Salary    int    `json:"salary" validate:"min=0"`
	Expenses  int    `json:"expenses" validate:"min=0"`
	Savings   int    `json:"savings"`
}

type PlayerFinance struct {
	Cash             int `json:"cash"`
	TotalAssets      int `json:"totalAssets"`
	TotalLiabilities int `json:"totalLiabilities"`
	CashFlow         int `json:"cashFlow"`
	NetWorth         int `json:"netWorth"`
}

func (p Player) TotalAssets() int {
	sum := 0
	for _, a := range p.Assets {
		sum += a.Value
	}
	return sum
}

func (p Player) TotalLiabilities() int {
	sum := 0
	for _, l := range p.Liabilities {
		sum += l.Amount
	}
	return sum
}

// NetWorth is cash plus asset value minus outstanding liabilities.
func (p Player) NetWorth() int {
	return p.Cash + p.TotalAssets() - p.TotalLiabilities()
}

// AssetIncome sums recurring income, treating assets without income as 0.
func (p Player) AssetIncome() int {
	sum := 0
	for _, a := range p.Assets {
		if a.Income != nil {
			sum += *a.Income
		}
	}
	return sum
}

func (p Player) Finance() PlayerFinance {
	return PlayerFinance{
		Cash:             p.Cash,
		TotalAssets:      p.TotalAssets(),
		TotalLiabilities: p.TotalLiabilities(),
		CashFlow:         p.Income - p.Expenses,
		NetWorth:         p.NetWorth(),
	}
}

// Clone copies the player including its asset and liability lists.
func (p Player) Clone() Player {
	c := p
	c.Assets = make([]Asset, len(p.Assets))
	copy(c.Assets, p.Assets)
	c.Liabilities = make([]Liability, len(p.Liabilities))
	copy(c.Liabilities, p.Liabilities)
	if p.Dream != nil {
		d := *p.Dream
		c.Dream = &d
	}
	return c
}
