// Command ainterp loads a compiled .ain image and either runs it to
// completion or, under --audit, reports what it cannot run without
// executing a single instruction (§6.2).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/config"
	"github.com/nunuhara/ainterp/internal/vm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var audit bool

	cmd := &cobra.Command{
		Use:   "ainterp <inifile|ainfile>",
		Short: "run or audit a compiled .ain image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(args[0], audit)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&audit, "audit", "a", false, "report unencoded opcodes and unlinked library functions without executing")
	return cmd
}

// runMain resolves the CLI argument to a config and an .ain path (§6.2:
// the argument is either an .ini pointing at the game, or the .ain file
// itself, in which case configuration falls back to defaults), loads the
// image, and either audits or runs it.
func runMain(arg string, audit bool) error {
	cfg, ainPath, err := resolveArg(arg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(ainPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ainPath, err)
	}

	prog, err := ain.Load(raw)
	if err != nil {
		return err
	}

	if audit {
		report := auditProgram(prog)
		report.Print(os.Stdout)
		return nil
	}

	return runProgram(prog, cfg)
}

// resolveArg distinguishes the .ini and .ain forms of the CLI argument by
// extension (§6.2): anything not ending in .ain is treated as an .ini, and
// the image to load is the same-named .ain file alongside it.
func resolveArg(arg string) (config.Config, string, error) {
	if strings.EqualFold(filepath.Ext(arg), ".ain") {
		return config.Default(), arg, nil
	}
	cfg, err := config.Load(arg)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("reading %s: %w", arg, err)
	}
	ainPath := strings.TrimSuffix(arg, filepath.Ext(arg)) + ".ain"
	return cfg, ainPath, nil
}

func runProgram(prog *ain.Program, cfg config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	machine := vm.New(prog, nil, vm.Config{SaveFolder: cfg.SaveFolder, CodePage: cfg.CodePage}, logger.Sugar())
	exitCode, err := machine.Run()
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
