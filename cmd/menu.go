package cmd

import (
	"errors"
	"time"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/lkeller19/bankledger/internal/errhandler"
	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/store"
	"github.com/lkeller19/bankledger/internal/ui/prompts"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/lkeller19/bankledger/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	actionOpen     = "open account"
	actionSummary  = "summary"
	actionSelect   = "select account"
	actionList     = "list transactions"
	actionAdd      = "add transaction"
	actionTriggers = "<monthly triggers>"
	actionSave     = "save"
	actionLoad     = "load"
	actionQuit     = "quit"
)

var menuActions = []string{
	actionOpen,
	actionSummary,
	actionSelect,
	actionList,
	actionAdd,
	actionTriggers,
	actionSave,
	actionLoad,
	actionQuit,
}

type menuRunner struct {
	svc *service.Service
	l   *ledger.Ledger
}

func NewMenuCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu loop",
		Long: `Run the interactive session: a fresh ledger is kept in memory and only
written to disk by the explicit save action; load replaces it with the last
saved snapshot.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &menuRunner{svc: svc, l: ledger.New()}
			return runner.Run()
		},
	}
}

func (r *menuRunner) Run() error {
	for {
		views.RenderSelected(r.selectedRow())

		choice, err := prompts.PromptSelect("Enter command", menuActions, actionSummary)
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}

		if choice == actionQuit {
			return nil
		}

		if err := r.dispatch(choice); err != nil {
			errhandler.HandleError(err)
		}
	}
}

func (r *menuRunner) dispatch(choice string) error {
	switch choice {
	case actionOpen:
		return r.openAccount()
	case actionSummary:
		return views.NewSummaryView().Render(r.l.Summary())
	case actionSelect:
		return r.selectAccount()
	case actionList:
		return r.listTransactions()
	case actionAdd:
		return r.addTransaction()
	case actionTriggers:
		r.l.RunMonthlyTriggers(today())
		pterm.Success.Println("Monthly triggers applied")
		return nil
	case actionSave:
		if err := r.svc.SaveLedger(r.l); err != nil {
			return err
		}
		pterm.Success.Println("Ledger saved")
		return nil
	case actionLoad:
		return r.loadLedger()
	}
	return nil
}

func (r *menuRunner) openAccount() error {
	kindRaw, err := prompts.PromptAccountKind()
	if err != nil {
		return err
	}
	amountRaw, err := prompts.PromptAmount("Initial deposit amount?")
	if err != nil {
		return err
	}

	amount, err := validation.ParseAmount(amountRaw)
	if err != nil {
		return err
	}

	kind, ok := ledger.ParseKind(kindRaw)
	if !ok {
		pterm.Warning.Printf("%q is not a valid account type, nothing opened\n", kindRaw)
	} else {
		r.l.OpenAccount(kind, amount, today())
	}

	return views.NewSummaryView().Render(r.l.Summary())
}

func (r *menuRunner) selectAccount() error {
	if err := views.NewSummaryView().Render(r.l.Summary()); err != nil {
		return err
	}

	numberRaw, err := prompts.PromptAccountNumber()
	if err != nil {
		return err
	}
	id, err := validation.ParseAccountNumber(numberRaw)
	if err != nil {
		return err
	}

	r.l.Select(id)
	return nil
}

func (r *menuRunner) listTransactions() error {
	txs, err := r.l.Transactions()
	if err != nil {
		return err
	}
	return views.NewTransactionListView().Render(txs)
}

func (r *menuRunner) addTransaction() error {
	date, err := prompts.PromptDate(today())
	if err != nil {
		return err
	}
	amountRaw, err := prompts.PromptAmount("Amount?")
	if err != nil {
		return err
	}

	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	amount, err := validation.ParseAmount(amountRaw)
	if err != nil {
		return err
	}

	applied, err := r.l.AddTransaction(date, amount)
	if err != nil {
		return err
	}
	if !applied {
		pterm.Warning.Println("Transaction not applied (account policy rejected it)")
	}
	return nil
}

func (r *menuRunner) loadLedger() error {
	loaded, err := r.svc.LoadLedger()
	if errors.Is(err, store.ErrNoSnapshot) {
		pterm.Warning.Println("No saved ledger yet")
		return nil
	}
	if err != nil {
		return err
	}

	r.l = loaded
	pterm.Success.Println("Ledger loaded")
	return nil
}

func (r *menuRunner) selectedRow() *ledger.SummaryRow {
	a := r.l.Selected()
	if a == nil {
		return nil
	}
	return &ledger.SummaryRow{Kind: a.Kind(), ID: a.ID(), Balance: a.Balance()}
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}
