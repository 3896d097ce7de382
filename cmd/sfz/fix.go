package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sfzkit/internal/diag"
	"sfzkit/internal/driver"
	"sfzkit/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.sfz|directory>",
	Short: "Apply suggested fixes to an instrument or a library",
	Long: `Parse the input, then rewrite misspelled opcode names and enumerated
values to the closest known ones. Text that came from #include or
#define expansion is never rewritten`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every fix")
	fixCmd.Flags().Bool("once", false, "apply the first fix in file order (default)")
	fixCmd.Flags().String("code", "", "apply fixes of one diagnostic code, e.g. OPC3001")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	codeFlag, err := cmd.Flags().GetString("code")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if codeFlag != "" && (applyAll || applyOnce) {
		return fmt.Errorf("--code cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun}
	switch {
	case codeFlag != "":
		code, ok := diag.ParseCode(codeFlag)
		if !ok {
			return fmt.Errorf("unknown diagnostic code %q", codeFlag)
		}
		opts.Mode, opts.Code = fix.ApplyModeCode, code
	case applyAll:
		opts.Mode = fix.ApplyModeAll
	}

	st, err := loadSettings(cmd, targetPath)
	if err != nil {
		return err
	}
	// исправления не должны теряться из-за лимита диагностик
	st.opts.MaxDiagnostics = 0
	st.opts.Strict = false

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	out := cmd.OutOrStdout()
	if !info.IsDir() {
		result, err := driver.Parse(cmd.Context(), targetPath, st.opts)
		if err != nil {
			return fmt.Errorf("fix: parse failed: %w", err)
		}
		res, applyErr := fix.Apply(result.FileSet, sortedItems(result.Bag), opts)
		return handleApplyResult(out, res, applyErr, dryRun)
	}

	// на каждый файл свой FileSet, так что применяем по одному
	dirRes, err := driver.ParseDir(cmd.Context(), targetPath, st.opts)
	if err != nil {
		return fmt.Errorf("fix: parse dir failed: %w", err)
	}
	total := &fix.ApplyResult{}
	for _, f := range dirRes.Files {
		if f.Result == nil {
			continue
		}
		res, applyErr := fix.Apply(f.Result.FileSet, sortedItems(f.Result.Bag), opts)
		if applyErr != nil && !errors.Is(applyErr, fix.ErrNoFixes) {
			return applyErr
		}
		total.Applied = append(total.Applied, res.Applied...)
		total.Skipped = append(total.Skipped, res.Skipped...)
		total.FileChanges = append(total.FileChanges, res.FileChanges...)
		if opts.Mode == fix.ApplyModeOnce && len(res.Applied) > 0 {
			break
		}
	}
	var applyErr error
	if len(total.Applied) == 0 {
		applyErr = fix.ErrNoFixes
	}
	return handleApplyResult(out, total, applyErr, dryRun)
}

func sortedItems(bag *diag.Bag) []diag.Diagnostic {
	if bag == nil {
		return nil
	}
	bag.Sort()
	return bag.Items()
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}
	if len(res.Applied) > 0 {
		fmt.Fprintf(out, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			location := item.Path
			if location == "" {
				location = "(unknown location)"
			} else if item.Line > 0 {
				location = fmt.Sprintf("%s:%d", location, item.Line)
			}
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.Title, item.Code.ID(), location, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 {
		if dryRun {
			fmt.Fprintln(out, "Files that would change:")
		} else {
			fmt.Fprintln(out, "Updated files:")
		}
		for _, change := range res.FileChanges {
			fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			fmt.Fprintf(out, "  %s [%s] %s: %s\n", skip.Title, skip.Code.ID(), skip.Path, skip.Reason)
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(out, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}
	return nil
}
