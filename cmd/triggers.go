package cmd

import (
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewTriggersCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "triggers",
		Short:        "Run the monthly interest and fee triggers on every account",
		Long:         `Accrue monthly interest on every account, then charge the low-balance fee on checking accounts under $100.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.RunMonthlyTriggers(); err != nil {
				return err
			}

			pterm.Success.Println("Monthly triggers applied")

			rows, err := svc.Summary()
			if err != nil {
				return err
			}
			return views.NewSummaryView().Render(rows)
		},
	}
}
