package models

type CardType string

const (
	CardSmallDeal   CardType = "small-deal"
	CardBigDeal     CardType = "big-deal"
	CardOpportunity CardType = "opportunity"
	CardDoodad      CardType = "doodad"
	CardCharity     CardType = "charity"
	CardPaycheck    CardType = "paycheck"
	CardDownsized   CardType = "downsized"
	CardOffer       CardType = "offer"
)

// CardData is a catalog entry as printed on the physical card.
type CardData struct {
	Id           string  `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Rule         string  `json:"rule,omitempty"`
	Symbol       string  `json:"symbol,omitempty"`
	Price        int     `json:"price,omitempty"`
	Range        string  `json:"range,omitempty"`
	Dividend     int     `json:"dividend,omitempty"`
	Shares       int     `json:"shares,omitempty"`
	ROI          float64 `json:"roi,omitempty"`
	Cost         int     `json:"cost,omitempty"`
	DownPayment  int     `json:"downPayment,omitempty"`
	Mortgage     int     `json:"mortgage,omitempty"`
	CashFlow     int     `json:"cashFlow,omitempty"`
	Tag          string  `json:"tag,omitempty"`
	LandType     string  `json:"landType,omitempty"`
	Units        int     `json:"units,omitempty"`
	PropertyType string  `json:"propertyType,omitempty"`
	Amount       int     `json:"amount,omitempty"`
	Offer        int     `json:"offer,omitempty"`
	OfferPerUnit int     `json:"offerPerUnit,omitempty"`
	Payment      int     `json:"payment,omitempty"`
	Loan         int     `json:"loan,omitempty"`
	Child        bool    `json:"child,omitempty"`
}

// Card is a live deck entry. Cards are never mutated after being built.
type Card struct {
	Id           string   `json:"id"`
	Type         CardType `json:"type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Amount       int      `json:"amount"`
	Cost         int      `json:"cost,omitempty"`
	Income       int      `json:"income,omitempty"`
	ROI          float64  `json:"ROI,omitempty"`
	Symbol       string   `json:"symbol,omitempty"`
	Price        int      `json:"price,omitempty"`
	Range        string   `json:"range,omitempty"`
	Dividend     int      `json:"dividend,omitempty"`
	DownPayment  int      `json:"downPayment,omitempty"`
	Mortgage     int      `json:"mortgage,omitempty"`
	CashFlow     int      `json:"cashFlow,omitempty"`
	Tag          string   `json:"tag,omitempty"`
	LandType     string   `json:"landType,omitempty"`
	Units        int      `json:"units,omitempty"`
	PropertyType string   `json:"propertyType,omitempty"`
	Loan         int      `json:"loan,omitempty"`
	Payment      int      `json:"payment,omitempty"`
	Child        bool     `json:"child,omitempty"`
	Rule         string   `json:"rule,omitempty"`
	Offer        int      `json:"offer,omitempty"`
	OfferPerUnit int      `json:"offerPerUnit,omitempty"`
}

// ToCard tags catalog data with the pool it was taken from.
func (d CardData) ToCard(t CardType) Card {
	amount := d.Cost
	if amount == 0 {
		amount = d.Offer
	}
	if amount == 0 {
		amount = d.OfferPerUnit
	}
	return Card{
		Id:           d.Id,
		Type:         t,
		Title:        d.Name,
		Description:  d.Description,
		Amount:       amount,
		Cost:         d.Cost,
		Income:       d.CashFlow,
		ROI:          d.ROI,
		Symbol:       d.Symbol,
		Price:        d.Price,
		Range:        d.Range,
		Dividend:     d.Dividend,
		DownPayment:  d.DownPayment,
		Mortgage:     d.Mortgage,
		CashFlow:     d.CashFlow,
		Tag:          d.Tag,
		LandType:     d.LandType,
		Units:        d.Units,
		PropertyType: d.PropertyType,
		Loan:         d.Loan,
		Payment:      d.Payment,
		Child:        d.Child,
		Rule:         d.Rule,
		Offer:        d.Offer,
		OfferPerUnit: d.OfferPerUnit,
	}
}
