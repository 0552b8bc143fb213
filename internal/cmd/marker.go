package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"castrec/internal/markers"
)

func newMarkerCmd() *cobra.Command {
	parent := &cobra.Command{
		Use:   "marker",
		Short: "Add or list markers in a .cast recording",
	}
	parent.AddCommand(newMarkerAddCmd(), newMarkerListCmd())
	return parent
}

func newMarkerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path> <t_abs_seconds> <label>",
		Short: "Insert a marker at an absolute timestamp",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, tStr, label := args[0], args[1], args[2]
			tAbs, err := strconv.ParseFloat(tStr, 64)
			if err != nil {
				return newUsageError("t_abs must be a number: " + err.Error())
			}
			return markers.AddMarker(path, tAbs, label)
		},
	}
}

func newMarkerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <path>",
		Short: "List markers with their cumulative timestamps",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := markers.ListMarkers(args[0])
			if err != nil {
				return err
			}
			for _, m := range ms {
				cmd.Printf("%.3f\t%s\n", m.Time, m.Label)
			}
			return nil
		},
	}
}
