package cmd

import (
	"github.com/spf13/cobra"

	"castrec/internal/config"
	"castrec/internal/recorder"
)

func newRecordCmd() *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "record <agent> -- <command> [args...]",
		Short: "Record a terminal session under a PTY to a .cast file",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent := args[0]
			argv := args[1:]

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			r := recorder.New(recorder.Options{
				StorageRoot:  cfg.StorageRoot,
				NameTemplate: cfg.NameTemplate,
				Name:         name,
			})
			path, err := r.Record(agent, argv)
			if path != "" {
				cmd.Println(path)
			}
			return err
		},
	}
	c.Flags().StringVar(&name, "name", "", "explicit recording name (overrides the configured template)")
	return c
}
