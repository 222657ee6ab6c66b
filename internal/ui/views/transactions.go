package views

import (
	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(txs []ledger.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Amount", "Origin"},
	}

	for _, tx := range txs {
		amount := "$" + utils.FormatMoney(tx.Amount)

		origin := "user"
		var coloredAmount string
		if tx.System {
			origin = pterm.Gray("monthly trigger")
			coloredAmount = pterm.Gray(amount)
		} else if tx.Amount.IsNegative() {
			coloredAmount = pterm.Red(amount)
		} else {
			coloredAmount = pterm.Green(amount)
		}

		tableData = append(tableData, []string{tx.Date, coloredAmount, origin})
	}

	pterm.DefaultSection.Printf("Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
