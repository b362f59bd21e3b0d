package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rowdrag [dir]",
		Short: "Reorder the entries of a directory by dragging them with the mouse.",
		Example: `
rowdrag
rowdrag ~/Pictures --handle
rowdrag --locked '*.mod' --locked 'go.sum'
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default .rowdrag.yaml)")
	flags.Bool("handle", false, "only start drags from the row handle")
	flags.String("handle-key", "", "marker identifying handle cells")
	flags.StringSlice("locked", nil, "glob patterns of entries that can't be dragged")
	flags.Bool("disabled", false, "turn dragging off")
	flags.Bool("si", false, "show sizes in SI units")
	flags.Int("limit", 0, "maximum number of entries to list")
	flags.Bool("debug", false, "log to debug.log")
	return cmd
}

func run(cfg Config, out io.Writer) error {
	if cfg.Debug {
		f, err := tea.LogToFile("debug.log", "rowdrag")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	zone.NewGlobal()
	defer zone.Close()

	m, err := newModel(cfg, log.Default())
	if err != nil {
		return err
	}
	log.Printf("listing %s, handle mode %t", cfg.Dir, cfg.Handle)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if fm, ok := final.(*model); ok && fm.footer.status != "" {
		fmt.Fprintln(out, fm.footer.status)
	}
	return nil
}
