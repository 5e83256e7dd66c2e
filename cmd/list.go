package main

import (
	"github.com/Shivanand-hulikatti/community-events/internal/console"
	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var criteria model.Criteria

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the visible events and registration choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.workflow.Init(console.NewRenderer(cmd.OutOrStdout()), criteria)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Category, "category", "", "Only show events in this category")
	cmd.Flags().StringVar(&criteria.Search, "search", "", "Only show events whose name contains this text")
	return cmd
}
