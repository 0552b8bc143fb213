package cmd

import (
	"github.com/spf13/cobra"

	"castrec/internal/clipboard"
)

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <path>",
		Short: "Copy a recording's contents to the clipboard",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := clipboard.CopyFile(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("copied via %s\n", method)
			return nil
		},
	}
}
