package models

type JobExpenses struct {
	Taxes             int `json:"taxes"`
	HomeMortgage      int `json:"homeMortgage"`
	SchoolLoanPayment int `json:"schoolLoanPayment"`
	CarLoanPayment    int `json:"carLoanPayment"`
	CreditCardPayment int `json:"creditCardPayment"`
	RetailPayment     int `json:"retailPayment"`
	OtherExpenses     int `json:"otherExpenses"`
	ChildExpenses     int `json:"childExpenses"`
	BankLoanPayment   int `json:"bankLoanPayment"`
}

func (e JobExpenses) Total() int {
	return e.Taxes + e.HomeMortgage + e.SchoolLoanPayment + e.CarLoanPayment +
		e.CreditCardPayment + e.RetailPayment + e.OtherExpenses + e.ChildExpenses + e.BankLoanPayment
}

type Job struct {
	Id            string      `json:"id"`
	Name          string      `json:"name"`
	Salary        int         `json:"salary"`
	Expenses      JobExpenses `json:"expenses"`
	TotalExpenses int         `json:"totalExpenses"`
	CashFlow      int         `json:"cashFlow"`
	StartingCash  int         `json:"startingCash"`
	Savings       int         `json:"savings"`
}
