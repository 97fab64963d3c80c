// Command hyperfine benchmarks one or more shell commands and compares
// their run times.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/command"
	"github.com/sftfjugg/hyperfine/internal/export"
	"github.com/sftfjugg/hyperfine/internal/options"
	"github.com/sftfjugg/hyperfine/internal/progress"
	"github.com/sftfjugg/hyperfine/internal/units"
)

const version = "0.1.0"

type cliFlags struct {
	warmup      uint64
	minRuns     uint64
	maxRuns     uint64
	exactRuns   uint64
	minTime     float64
	prepare     []string
	cleanup     []string
	paramScans  []string
	paramLists  []string
	shell       string
	noShell     bool
	ignoreFail  bool
	showOutput  bool
	style       string
	timeUnit    string
	names       []string
	noTimes     bool
	exportCSV   string
	exportJSON  string
	exportMD    string
}

func newRootCommand() *cobra.Command {
	var flags cliFlags

	root := &cobra.Command{
		Use:     "hyperfine [flags] <command>...",
		Short:   "A command-line benchmarking tool",
		Args:    cobra.MinimumNArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.Flags()
	f.Uint64VarP(&flags.warmup, "warmup", "w", 0,
		"Perform NUM warmup runs before the actual benchmark. This can be used to fill (disk) caches for I/O-heavy programs.")
	f.Uint64VarP(&flags.minRuns, "min-runs", "m", 10,
		"Perform at least NUM runs for each command.")
	f.Uint64VarP(&flags.maxRuns, "max-runs", "M", 0,
		"Perform at most NUM runs for each command.")
	f.Uint64VarP(&flags.exactRuns, "runs", "r", 0,
		"Perform exactly NUM runs for each command.")
	f.Float64Var(&flags.minTime, "min-benchmarking-time", 3.0,
		"Minimum benchmarking time in seconds.")
	_ = f.MarkHidden("min-benchmarking-time")
	f.StringArrayVarP(&flags.prepare, "prepare", "p", nil,
		"Execute CMD before each timing run. Give once for all commands or once per command. "+
			"This is useful for clearing disk caches, for example.")
	f.StringArrayVarP(&flags.cleanup, "cleanup", "c", nil,
		"Execute CMD after all timing runs of a command. Give once for all commands or once per command.")
	f.StringArrayVarP(&flags.paramScans, "parameter-scan", "P", nil,
		"Perform benchmark runs for each value in the range \"VAR MIN MAX [STEP]\". "+
			"Replaces the string '{VAR}' in each command by the current parameter value.")
	f.StringArrayVarP(&flags.paramLists, "parameter-list", "L", nil,
		"Perform benchmark runs for each value in \"VAR value1,value2,...\". "+
			"Replaces the string '{VAR}' in each command by the current parameter value.")
	f.StringVarP(&flags.shell, "shell", "S", options.DefaultShell(),
		"The shell to use for executing the benchmarked commands.")
	f.BoolVarP(&flags.noShell, "no-shell", "N", false,
		"Run the commands directly without an intermediate shell. No shell spawning overhead correction is applied.")
	f.BoolVarP(&flags.ignoreFail, "ignore-failure", "i", false,
		"Ignore non-zero exit codes of the benchmarked commands.")
	f.BoolVar(&flags.showOutput, "show-output", false,
		"Print the stdout and stderr of the benchmarked commands instead of suppressing them.")
	f.StringVarP(&flags.style, "style", "s", "auto",
		"Set output style: auto, basic, full, nocolor or none.")
	f.StringVarP(&flags.timeUnit, "time-unit", "u", "",
		"Set the time unit used for display and export: second or millisecond.")
	f.StringArrayVarP(&flags.names, "command-name", "n", nil,
		"Give a meaningful name to a command, one per benchmarked command.")
	f.BoolVar(&flags.noTimes, "no-times", false,
		"Omit the individual timing samples from exported results.")
	f.StringVar(&flags.exportCSV, "export-csv", "",
		"Export the timing results as CSV to the given FILE ('-' for stdout).")
	f.StringVar(&flags.exportJSON, "export-json", "",
		"Export the timing results as JSON to the given FILE ('-' for stdout).")
	f.StringVar(&flags.exportMD, "export-markdown", "",
		"Export the timing results as a Markdown table to the given FILE ('-' for stdout).")

	return root
}

func run(cmd *cobra.Command, args []string, flags *cliFlags) error {
	style, err := options.ParseStyle(flags.style, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return err
	}
	switch style {
	case options.StyleFull:
	case options.StyleBasic, options.StyleNoColor, options.StyleDisabled:
		color.NoColor = true
	}

	sink := progress.Sink(progress.Discard)
	if style == options.StyleFull || style == options.StyleNoColor {
		sink = progress.NewBar()
	}

	var axes []command.Axis
	for _, spec := range flags.paramScans {
		axis, err := command.ParseScanAxis(spec)
		if err != nil {
			return err
		}
		axes = append(axes, axis)
	}
	for _, spec := range flags.paramLists {
		axis, err := command.ParseListAxis(spec)
		if err != nil {
			return err
		}
		axes = append(axes, axis)
	}

	commands, err := command.BuildCommands(args, flags.names, axes)
	if err != nil {
		return err
	}

	opts := options.Default()
	opts.WarmupCount = flags.warmup
	opts.Runs.Min = flags.minRuns
	if cmd.Flags().Changed("max-runs") {
		max := flags.maxRuns
		opts.Runs.Max = &max
	}
	if cmd.Flags().Changed("runs") {
		exact := flags.exactRuns
		opts.Runs = options.RunBounds{Min: exact, Max: &exact}
	}
	opts.MinTimeSec = flags.minTime
	if flags.ignoreFail {
		opts.FailureAction = options.Ignore
	}
	opts.PreparationCommands = flags.prepare
	opts.CleanupCommands = flags.cleanup
	opts.OutputStyle = style
	opts.Shell = flags.shell
	opts.NoShell = flags.noShell
	opts.ShowOutput = flags.showOutput
	if flags.timeUnit != "" {
		unit, err := units.Parse(flags.timeUnit)
		if err != nil {
			return err
		}
		opts.TimeUnit = &unit
	}

	if err := opts.Validate(len(commands)); err != nil {
		return err
	}

	// The spawning overhead is calibrated once and shared read-only by
	// every benchmark. Without a shell there is nothing to correct for.
	var overhead benchmark.TimingResult
	if !opts.NoShell {
		overhead, err = benchmark.MeanShellSpawningTime(cmd.Context(), opts, sink)
		if err != nil {
			return err
		}
	}

	results := make([]*benchmark.Result, 0, len(commands))
	for i, c := range commands {
		result, err := benchmark.RunBenchmark(cmd.Context(), i, c, overhead, opts, sink)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if len(results) > 1 && style != options.StyleDisabled {
		printSummary(results)
	}

	if flags.noTimes {
		for _, r := range results {
			r.Times = nil
		}
	}
	var manager export.Manager
	if flags.exportCSV != "" {
		manager.Add(export.CSVExporter{}, flags.exportCSV)
	}
	if flags.exportJSON != "" {
		manager.Add(export.JSONExporter{}, flags.exportJSON)
	}
	if flags.exportMD != "" {
		manager.Add(export.MarkdownExporter{}, flags.exportMD)
	}
	return manager.WriteResults(results, opts.TimeUnit)
}

func printSummary(results []*benchmark.Result) {
	annotated := benchmark.ComputeWithCheck(results, options.SortByMeanTime)
	if annotated == nil {
		fmt.Fprintln(color.Output, "Note: relative speed comparison is not possible since the fastest mean time is zero.")
		return
	}

	fmt.Fprintln(color.Output, color.New(color.Bold).Sprint("Summary"))
	for _, entry := range annotated {
		if entry.IsFastest {
			fmt.Fprintf(color.Output, "  '%s' ran\n", color.CyanString(entry.Result.Command))
			continue
		}
		if entry.RelativeSpeedStddev != nil {
			fmt.Fprintf(color.Output, "    %s ± %s times faster than '%s'\n",
				color.GreenString("%.2f", entry.RelativeSpeed),
				color.GreenString("%.2f", *entry.RelativeSpeedStddev),
				color.RedString(entry.Result.Command))
		} else {
			fmt.Fprintf(color.Output, "    %s times faster than '%s'\n",
				color.GreenString("%.2f", entry.RelativeSpeed),
				color.RedString(entry.Result.Command))
		}
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
