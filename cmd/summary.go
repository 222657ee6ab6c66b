package cmd

import (
	"fmt"

	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "summary",
		Short:        "List all accounts with their balances",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := svc.Summary()
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}
			return views.NewSummaryView().Render(rows)
		},
	}
}
