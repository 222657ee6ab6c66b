package cmd

import (
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/ui/prompts"
	"github.com/lkeller19/bankledger/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSelectCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "select [account-number]",
		Short:        "Select the account later commands operate on",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var number string

			if len(args) == 1 {
				number = args[0]
			} else {
				rows, err := svc.Summary()
				if err != nil {
					return err
				}
				if err := views.NewSummaryView().Render(rows); err != nil {
					return err
				}

				number, err = prompts.PromptAccountNumber()
				if err != nil {
					return err
				}
			}

			if err := svc.SelectAccount(number); err != nil {
				return err
			}

			row, err := svc.SelectedRow()
			if err != nil {
				return err
			}
			views.RenderSelected(row)
			return nil
		},
	}
}
