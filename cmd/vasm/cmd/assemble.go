package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/keurnel/vasm/internal/assembler"
	"github.com/keurnel/vasm/internal/config"
	"github.com/keurnel/vasm/internal/debugcontext"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:     "assemble [INFILE]",
	GroupID: "file-operations",
	Short:   "Assemble a source file into a flat object file",
	Long: `Assemble reads register-machine assembly (from INFILE, or stdin if
omitted), and writes the encoded object bytes to the output file. If any
source error is reported, no output file is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().StringP("output", "o", "", "output file path (default a.out, or .vasmrc.toml's assemble.output)")
	assembleCmd.Flags().BoolP("debug", "D", false, "enable trace diagnostics")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to get current working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Assemble.Output
	}

	debug := cfg.Assemble.Debug
	if cmd.Flags().Changed("debug") {
		debug, _ = cmd.Flags().GetBool("debug")
	}

	src, filePath, err := openSource(args)
	if err != nil {
		return err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	// Assemble into memory first; the real output file is only opened
	// (and therefore only truncated/created) once assembly has actually
	// succeeded — spec.md §7 / SPEC_FULL.md §10.1's no-output-on-error
	// requirement, mirroring the source's `if (!j_err) write_instructions(...)`
	// gate in jas.c/output.c.
	bytes, ctx := assembler.Assemble(src, filePath)
	printDiagnostics(cmd, ctx, debug)

	if ctx.HasErrors() {
		return fmt.Errorf("assembly failed with %d error(s)", len(ctx.Errors()))
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(bytes); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// openSource resolves the positional argument (or stdin when absent) into
// a readable source and the path used for diagnostic locations.
func openSource(args []string) (io.Reader, string, error) {
	if len(args) == 0 {
		return os.Stdin, "<stdin>", nil
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, filepath.Base(path), nil
}

// printDiagnostics writes the error report to stderr. With -D/--debug,
// every recorded entry (including trace-severity resolution notes) is
// shown; otherwise only errors are (spec.md §7, SPEC_FULL.md §10.3).
func printDiagnostics(cmd *cobra.Command, ctx *debugcontext.DebugContext, debug bool) {
	var lines []string
	if debug {
		for _, e := range ctx.Entries() {
			lines = append(lines, e.Render())
		}
	} else {
		for _, e := range ctx.Errors() {
			lines = append(lines, e.Render())
		}
	}
	if len(lines) > 0 {
		cmd.PrintErrln(strings.Join(lines, "\n"))
	}
}
