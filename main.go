package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tuiselect/internal/config"
	"tuiselect/internal/eventbus"
	"tuiselect/internal/ui"
	inputtypes "tuiselect/internal/ui/input/types"
)

// errCancelled means the user left without choosing
var errCancelled = errors.New("cancelled")

// flags holds the command line overrides applied on top of the config file
type flags struct {
	configPath   string
	defaultValue string
	prompt       string
	disabled     []string
	maxVisible   int
	init         bool
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "tuiselect [flags] [option...]",
	Short: "Pick one value from a list in the terminal",
	Long: `tuiselect shows a dropdown select and prints the chosen value to stdout.

Options come from the positional arguments, a TOML config file, or both.
Navigate with the arrow keys or the mouse, type to jump to a matching option,
enter to choose, esc to close the list and esc again to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	bindFlags(rootCmd, &opts)
}

// uiEvents are the bus events forwarded into the program as EventMsg
var uiEvents = []eventbus.EventType{
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventValueChanged,
}

func bindFlags(cmd *cobra.Command, o *flags) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "config file (default: user config dir)")
	f.StringVarP(&o.defaultValue, "default", "d", "", "initially selected value")
	f.StringVarP(&o.prompt, "prompt", "p", "", "text shown before the select")
	f.StringSliceVar(&o.disabled, "disabled", nil, "values that cannot be chosen")
	f.IntVar(&o.maxVisible, "max-visible", 0, "rows shown before the list scrolls")
	f.BoolVar(&o.init, "init", false, "write a starter config file and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Set up logging
	logFile, err := os.OpenFile("tuiselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()

	// Subscribe before loading so the UI sees the ConfigLoaded event
	events := make(chan eventbus.DomainEvent, 16)
	forward := func(e eventbus.DomainEvent) {
		select {
		case events <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range uiEvents {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	configSvc := config.NewConfigServiceWithBus(bus)

	if opts.init {
		path := opts.configPath
		if path == "" {
			path = config.DefaultPath(configSvc)
		}
		if err := configSvc.SaveToPath(config.StarterConfig(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}

	cfg, err := loadConfig(configSvc, cmd, opts, args)
	if err != nil {
		return err
	}
	keys, err := keyMap(cfg.Keys)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var def *string
	if cfg.Default != "" {
		def = &cfg.Default
	}
	sel := ui.NewModel(ui.Config[string]{
		ID:           "main",
		Prompt:       cfg.Prompt,
		Placeholder:  cfg.Placeholder,
		MaxVisible:   cfg.MaxVisible,
		ShowHelp:     cfg.ShowHelp,
		Keys:         &keys,
		DefaultValue: def,
		Bus:          bus,
	})
	sel.SetOptions(cfg.DomainOptions())
	picker := ui.NewPicker(sel)

	// The UI goes to stderr so stdout carries only the result
	p := tea.NewProgram(picker,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		// Hover needs motion with no button held
		tea.WithMouseAllMotion(),
	)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stopForwarding := context.WithCancel(gctx)

	g.Go(func() error {
		defer stopForwarding()
		log.Printf("Starting UI with %d options", len(cfg.Options))
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return errCancelled
		}
		return err
	})

	g.Go(func() error {
		for {
			select {
			case e := <-events:
				p.Send(ui.EventMsg{Event: e})
			case <-runCtx.Done():
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}

	value, ok := picker.Result()
	if !ok {
		return errCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// loadConfig picks the config source, then applies positional options and flags
func loadConfig(svc config.ConfigService, cmd *cobra.Command, f flags, args []string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case f.configPath != "":
		cfg, err = svc.LoadFromPath(f.configPath)
	case len(args) == 0:
		cfg, err = svc.Load()
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	for _, a := range args {
		cfg.Options = append(cfg.Options, config.OptionConfig{Label: a})
	}

	changed := cmd.Flags().Changed
	if changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if changed("default") {
		cfg.Default = f.defaultValue
	}
	if changed("max-visible") {
		cfg.MaxVisible = f.maxVisible
	}
	if len(f.disabled) > 0 {
		off := make(map[string]bool, len(f.disabled))
		for _, v := range f.disabled {
			off[v] = true
		}
		for i, o := range cfg.Options {
			if off[o.Label] || (o.Value != "" && off[o.Value]) {
				cfg.Options[i].Disabled = true
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// keyMap applies the config's key overrides to the default bindings
func keyMap(overrides map[string][]string) (inputtypes.KeyMap, error) {
	keys := inputtypes.DefaultKeyMap()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if err := keys.Override(name, overrides[name]); err != nil {
			return keys, fmt.Errorf("config keys: %w", err)
		}
	}
	return keys, nil
}
