package cmd

import (
	"time"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/prompts"
	"github.com/lkeller19/bankledger/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Date   string
	Amount string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to the selected account",
		Long: `Add a transaction to the selected account. Positive amounts deposit,
negative amounts withdraw. The account's policy decides whether the
transaction is applied: checking rejects overdrafts, savings additionally
caps user transactions per day and per month.

Examples:
  # Interactive mode
  bankledger add

  # Quick mode with flags
  bankledger add --date 2024-03-01 --amount -25.50`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Signed transaction amount (e.g., 100 or -25.50)")

	return cmd
}

func (r *addRunner) Run() error {
	date := r.flags.Date
	amount := r.flags.Amount

	hasFlags := r.cmd.Flags().Changed("date") || r.cmd.Flags().Changed("amount")

	if hasFlags {
		if date == "" {
			date = time.Now().Format(constants.DateFormat)
		}
	} else {
		var err error
		if date, err = prompts.PromptDate(time.Now().Format(constants.DateFormat)); err != nil {
			return err
		}
		if amount, err = prompts.PromptAmount("Amount?"); err != nil {
			return err
		}
	}

	applied, err := r.svc.AddTransaction(date, amount)
	if err != nil {
		return err
	}

	if !applied {
		pterm.Warning.Println("Transaction not applied (account policy rejected it)")
		return nil
	}

	pterm.Success.Println("Transaction applied")

	row, err := r.svc.SelectedRow()
	if err != nil {
		return err
	}
	if row != nil {
		pterm.Info.Printf("New balance: $%s\n", utils.FormatMoney(row.Balance))
	}
	return nil
}
