package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"sfzkit/internal/diagfmt"
	"sfzkit/internal/driver"
	"sfzkit/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sfz|-",
	Short: "Tokenize an SFZ file",
	Long: `Tokenize flattens includes, substitutes #define variables and prints the
resulting header, opcode and directive tokens. "-" reads standard input`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().StringSlice("only", nil, "print only these token kinds (header,assign,define,include)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	format, err := st.outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	only, err := cmd.Flags().GetStringSlice("only")
	if err != nil {
		return fmt.Errorf("failed to get only flag: %w", err)
	}
	keep, err := tokenKinds(only)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		var src []byte
		if src, err = io.ReadAll(cmd.InOrStdin()); err == nil {
			result, err = driver.TokenizeSource(cmd.Context(), stdinName, src, st.opts)
		}
	} else {
		result, err = driver.Tokenize(cmd.Context(), filePath, st.opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены в stdout
	if err := printDiagnostics(st, result.Bag, result.FileSet); err != nil {
		return err
	}

	tokens := result.Tokens
	if len(keep) > 0 {
		tokens = slices.DeleteFunc(slices.Clone(tokens), func(t token.Token) bool {
			return !slices.Contains(keep, t.Kind)
		})
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Err != nil || result.Bag.HasErrors() {
		return failSilently(cmd)
	}
	return nil
}

// tokenKinds maps --only values to token kinds. EOF is never printed on
// request.
func tokenKinds(names []string) ([]token.Kind, error) {
	var kinds []token.Kind
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "header":
			kinds = append(kinds, token.Header)
		case "assign", "opcode":
			kinds = append(kinds, token.Assign)
		case "define":
			kinds = append(kinds, token.Define)
		case "include":
			kinds = append(kinds, token.Include)
		case "directive":
			kinds = append(kinds, token.Define, token.Include)
		default:
			return nil, fmt.Errorf("unknown token kind %q (expected header|assign|define|include|directive)", name)
		}
	}
	return kinds, nil
}
