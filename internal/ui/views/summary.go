package views

import (
	"fmt"

	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/utils"
	"github.com/pterm/pterm"
)

type SummaryView struct{}

func NewSummaryView() *SummaryView {
	return &SummaryView{}
}

func (v *SummaryView) Render(rows []ledger.SummaryRow) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{
		{"Account", "Balance"},
	}

	for _, row := range rows {
		label := fmt.Sprintf("%s#%09d", row.Kind, row.ID)
		balance := "$" + utils.FormatMoney(row.Balance)

		var coloredLabel, coloredBalance string
		if row.Balance.IsNegative() {
			coloredLabel = pterm.Red(label)
			coloredBalance = pterm.Red(balance)
		} else {
			coloredLabel = pterm.Green(label)
			coloredBalance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{coloredLabel, coloredBalance})
	}

	pterm.DefaultSection.Printf("Account Summary")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(rows))
	return nil
}

// RenderSelected prints the menu header line naming the current selection.
func RenderSelected(row *ledger.SummaryRow) {
	if row == nil {
		pterm.Printf("Currently selected account: None\n")
		return
	}
	pterm.Printf("Currently selected account: %s\n", utils.FormatAccountLabel(string(row.Kind), row.ID, row.Balance))
}
