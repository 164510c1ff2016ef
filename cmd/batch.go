package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gql2csv/internal/pipeline"

	"github.com/gosuri/uiprogress"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	outDir string
	jobs   int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir|schema.graphql>...",
	Short: "Convert every GraphQL schema under the given paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		dir := viper.GetString("batch.out_dir")

		// 1. Discover
		var plan []pipeline.Job
		for _, root := range args {
			files, err := pipeline.Discover(root)
			if err != nil {
				return err
			}
			rootJobs, err := pipeline.PlanBatch(files, root, dir)
			if err != nil {
				return err
			}
			plan = append(plan, rootJobs...)
		}
		if len(plan) == 0 {
			return fmt.Errorf("no %s files found in %v", pipeline.SchemaExt, args)
		}
		Logger.Info("Starting batch", zap.Int("schemas", len(plan)), zap.Int("jobs", Settings.Batch.Jobs))
		start := time.Now()

		// 2. Progress bar, only on a terminal
		var (
			mu     sync.Mutex
			onDone func(pipeline.Result)
		)
		showProgress := isatty.IsTerminal(os.Stdout.Fd())
		if showProgress {
			uiprogress.Start()
			bar := uiprogress.AddBar(len(plan)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Converting: "
			})
			onDone = func(pipeline.Result) {
				mu.Lock()
				defer mu.Unlock()
				bar.Incr()
			}
		}

		// 3. Convert
		results := pipeline.RunBatch(cmd.Context(), plan, pipeline.Options{
			BoolStyle: Settings.BoolStyle(),
			Jobs:      Settings.Batch.Jobs,
			Logger:    Logger,
		}, onDone)

		if showProgress {
			uiprogress.Stop()
		}

		// 4. Report
		fmt.Fprintln(out, "\n📊 Summary Report:")
		for i, r := range results {
			icon := "✓"
			if !r.OK() {
				icon = "!"
			}
			fmt.Fprintf(out, "[%s] [%02d/%02d] %-30s -> %s : %d fields, %d types - %s\n",
				icon, i+1, len(results), r.Source, r.Destination, r.Rows, r.Types, r.Status)
			if msg := r.ErrorMsg(); msg != "" {
				fmt.Fprintf(out, "    └ Error: %s\n", msg)
			}
		}
		sum := pipeline.Summarize(results)
		fmt.Fprintln(out, "--------------------------------------------------")
		fmt.Fprintf(out, "Converted: %d/%d (failed: %d, skipped: %d), fields: %d\n",
			sum.OK, sum.Total, sum.Failed, sum.Skipped, sum.Rows)
		Logger.Info("Batch done", zap.Duration("elapsed", time.Since(start)))

		if sum.OK != sum.Total {
			return fmt.Errorf("%d of %d schemas were not converted", sum.Total-sum.OK, sum.Total)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for the generated CSV files (overrides config)")
	batchCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "schemas converted concurrently (overrides config)")

	viper.BindPFlag("batch.out_dir", batchCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("batch.jobs", batchCmd.Flags().Lookup("jobs"))
}
