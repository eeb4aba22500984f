package domain

// TransactionType distinguishes goods-ledger entries.
type TransactionType string

const (
	TransactionBuy        TransactionType = "buy"
	TransactionSell       TransactionType = "sell"
	TransactionLoss       TransactionType = "loss"
	TransactionInvestBuy  TransactionType = "invest_buy"
	TransactionInvestSell TransactionType = "invest_sell"
)

// Transaction is one ledger entry. Goods entries carry exact unit prices;
// investment entries round the unit price to whole units and carry the exact
// cash moved in Total. Loss entries are valued at the consumed lot's original
// unit price, not the current market price.
type Transaction struct {
	ID           string
	Type         TransactionType
	Good         string
	Quantity     int64
	PricePerUnit int64
	Total        int64
	Day          int
	City         string
}

// BankTransactionType distinguishes bank-statement entries.
type BankTransactionType string

const (
	BankTxDeposit  BankTransactionType = "deposit"
	BankTxWithdraw BankTransactionType = "withdraw"
	BankTxInterest BankTransactionType = "interest"
	BankTxDividend BankTransactionType = "dividend"
)

// BankTransaction is one bank-statement entry.
type BankTransaction struct {
	Type         BankTransactionType
	Amount       int64
	BalanceAfter int64
	Day          int
	Title        string
}
