package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"castrec/internal/activitylog"
	"castrec/internal/analyzer"
	"castrec/internal/config"
)

func newAnalyzeCmd() *cobra.Command {
	var runAgent bool
	var trace bool

	c := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Run the extraction pipeline over a .cast recording",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := activitylog.New(trace, filepath.Join(config.ConfigDir(), "activity.log"))
			if err != nil {
				return err
			}
			defer log.Close()

			a := analyzer.New()
			a.Config = cfg.Extraction.Apply()
			a.AgentBinary = cfg.Agent.Binary
			a.Logger = log

			var result *analyzer.Result
			if runAgent {
				result, err = a.AnalyzeWithAgent(context.Background(), path)
			} else {
				result, err = a.Analyze(path)
			}
			if err != nil {
				return err
			}

			cmd.Printf("%d cleaned events across %d segments\n", len(result.Events), len(result.Segments))
			for i, seg := range result.Segments {
				cmd.Printf("segment %d: [%.2fs, %.2fs] ~%d tokens\n", i, seg.StartTime, seg.EndTime, seg.TokenEstimate)
			}
			if runAgent {
				fmt.Fprintln(cmd.OutOrStdout(), result.AgentOutput)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&runAgent, "agent", false, "also invoke the resolved LLM-analysis agent binary")
	c.Flags().BoolVar(&trace, "trace", false, "log trace/warning diagnostics to ~/.castrec/activity.log")
	return c
}
