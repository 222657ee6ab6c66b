package cmd

import (
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/prompts"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type openFlags struct {
	Kind   string
	Amount string
}

type openRunner struct {
	svc   *service.Service
	flags *openFlags
	cmd   *cobra.Command
}

func NewOpenCmd(svc *service.Service) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new checking or savings account",
		Long: `Open a new account with an initial deposit.

Examples:
  # Interactive mode
  bankledger open

  # Quick mode with flags
  bankledger open --kind checking --amount 500`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &openRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Account kind: checking or savings")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Initial deposit amount (e.g., 500 or 500.50)")

	return cmd
}

func (r *openRunner) Run() error {
	kind := r.flags.Kind
	amount := r.flags.Amount

	hasFlags := r.cmd.Flags().Changed("kind") || r.cmd.Flags().Changed("amount")

	if !hasFlags {
		var err error
		if kind, err = prompts.PromptAccountKind(); err != nil {
			return err
		}
		if amount, err = prompts.PromptAmount("Initial deposit amount?"); err != nil {
			return err
		}
	}

	outcome, err := r.svc.OpenAccount(kind, amount)
	if err != nil {
		return err
	}

	if !outcome.Applied {
		pterm.Warning.Printf("%q is not a valid account type, nothing opened\n", kind)
	} else {
		pterm.Success.Printf("Opened %s account #%09d\n", outcome.Row.Kind, outcome.Row.ID)
	}

	rows, err := r.svc.Summary()
	if err != nil {
		return err
	}
	return views.NewSummaryView().Render(rows)
}
