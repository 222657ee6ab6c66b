package cmd

import (
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewTransactionsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "transactions",
		Short:        "List the selected account's transactions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := svc.Transactions()
			if err != nil {
				return err
			}
			return views.NewTransactionListView().Render(txs)
		},
	}
}
