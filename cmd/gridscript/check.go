package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridscript/internal/diagfmt"
	"gridscript/internal/driver"
	"gridscript/internal/observ"
	"gridscript/internal/prof"
	"gridscript/internal/project"
	"gridscript/internal/source"
	"gridscript/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [grid.toml]",
	Short: "Scan every level script listed in a project manifest",
	Long:  `Check loads a grid.toml manifest and tokenizes each level script, reporting the first lexical error per file`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel scan jobs (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("timings", false, "print per-stage timings to stderr")
	checkCmd.Flags().String("cpuprofile", "", "write a CPU profile to the given file")
	checkCmd.Flags().String("memprofile", "", "write a heap profile to the given file")
	_ = checkCmd.Flags().MarkHidden("cpuprofile")
	_ = checkCmd.Flags().MarkHidden("memprofile")
}

func runCheck(cmd *cobra.Command, args []string) error {
	manifestPath := "grid.toml"
	if len(args) == 1 {
		manifestPath = args[0]
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cpuProfile, _ := cmd.Flags().GetString("cpuprofile")
	memProfile, _ := cmd.Flags().GetString("memprofile")
	profSession, err := prof.Start(cpuProfile, memProfile)
	if err != nil {
		return err
	}
	defer func() {
		if perr := profSession.Stop(); perr != nil {
			fmt.Fprintln(os.Stderr, perr)
		}
	}()

	timer := observ.NewTimer()
	loadStage := timer.Begin("load manifest")
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	paths := manifest.ScriptPaths()
	timer.End(loadStage, fmt.Sprintf("%d script(s)", len(paths)))
	if len(paths) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "manifest lists no level scripts")
		return nil
	}

	scanStage := timer.Begin("tokenize")
	fileSet := source.NewFileSet()
	results, err := driver.TokenizeAll(cmd.Context(), fileSet, paths, jobs)
	if err != nil {
		return err
	}
	timer.End(scanStage, "")

	diagOpts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	items := make([]ui.FileStatus, 0, len(results))
	failed := 0

	for _, r := range results {
		switch {
		case r.LoadErr != nil:
			failed++
			items = append(items, ui.FileStatus{Path: r.Path, Detail: r.LoadErr.Error()})

		case r.LexErr != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s:\n", r.Path)
			if rerr := diagfmt.RenderLexError(os.Stderr, r.LexErr, fileSet.Get(r.FileID), diagOpts); rerr != nil {
				return rerr
			}
			items = append(items, ui.FileStatus{Path: r.Path, Detail: r.LexErr.Error()})

		default:
			items = append(items, ui.FileStatus{Path: r.Path, OK: true, Tokens: len(r.Tokens)})
		}
	}

	ui.RenderSummary(cmd.OutOrStdout(), "check: "+manifest.Game.Name, items, 0)
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed > 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d of %d script(s) failed", failed, len(results))
	}
	return nil
}
