package main

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/jobgear/internal/config"
	"github.com/cory-johannsen/jobgear/internal/game/inventory"
	"github.com/cory-johannsen/jobgear/internal/game/ruleset"
	"github.com/cory-johannsen/jobgear/internal/observability"
	"github.com/cory-johannsen/jobgear/internal/scripting"
)

// app carries the state shared by every subcommand once configuration is loaded.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	taxonomy *ruleset.Taxonomy
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		output     string
		a          app
	)

	cmd := &cobra.Command{
		Use:   "jobgear",
		Short: "Query the job taxonomy and gear restriction codes",
		Long: `jobgear answers two questions about gear:

- which stats matter for a job (main stats first, supporting stats as tiebreakers)
- which jobs may equip gear printed with a restriction code, including the
  advanced jobs each base job can become`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			v := config.NewViper()
			if err := v.BindPFlag("output.format", cmd.Flags().Lookup("output")); err != nil {
				return fmt.Errorf("binding output flag: %w", err)
			}
			if configPath != "" {
				v.SetConfigFile(configPath)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file: %w", err)
				}
			}
			cfg, err := config.LoadFromViper(v)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.cfg = cfg
			a.logger = logger
			a.taxonomy = ruleset.Default()
			logger.Debug("taxonomy ready",
				zap.Int("jobs", a.taxonomy.Jobs().Len()),
				zap.Int("restriction_codes", len(a.taxonomy.Restrictions().Codes())),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "yaml", "Output format (yaml, json)")

	cmd.AddCommand(
		jobsCmd(&a),
		jobCmd(&a),
		restrictionsCmd(&a),
		restrictionCmd(&a),
		checkCmd(&a),
		slotsCmd(&a),
		slotCmd(&a),
		scriptCmd(&a),
	)
	return cmd
}

func jobsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List every job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := a.taxonomy.Jobs().All().Jobs()
			views := make([]jobView, len(jobs))
			for i, j := range jobs {
				views[i] = newJobView(j)
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, views)
		},
	}
}

func jobCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "job <abbreviation>",
		Short: "Show a job's stats, armor, and specializations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, ok := a.taxonomy.Jobs().Job(args[0])
			if !ok {
				return fmt.Errorf("unknown job %q", args[0])
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, newJobView(j))
		},
	}
}

func restrictionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restrictions",
		Short: "List every restriction code and its eligible jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := a.taxonomy.Restrictions()
			var views []restrictionView
			for _, code := range table.Codes() {
				r, _ := table.Restriction(code)
				views = append(views, newRestrictionView(r))
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, views)
		},
	}
}

func restrictionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restriction <code>",
		Short: "Show the jobs eligible for gear printed with a restriction code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := a.taxonomy.Restrictions().Restriction(args[0])
			if !ok {
				return fmt.Errorf("unknown restriction code %q", args[0])
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, newRestrictionView(r))
		},
	}
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <code> <abbreviation>",
		Short: "Report whether a job may equip gear printed with a restriction code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, abbr := args[0], args[1]
			if _, ok := a.taxonomy.Restrictions().Restriction(code); !ok {
				return fmt.Errorf("unknown restriction code %q", code)
			}
			j, ok := a.taxonomy.Jobs().Job(abbr)
			if !ok {
				return fmt.Errorf("unknown job %q", abbr)
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, checkView{
				Code:    code,
				Job:     j.Abbreviation(),
				Allowed: a.taxonomy.Restrictions().Allows(code, j),
			})
		},
	}
}

func slotsCmd(a *app) *cobra.Command {
	var primaryOnly bool
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List equipment slots and their codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := inventory.AllSlots()
			if primaryOnly {
				slots = inventory.PrimarySlots()
			}
			views := make([]slotView, len(slots))
			for i, s := range slots {
				views[i] = newSlotView(s)
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, views)
		},
	}
	cmd.Flags().BoolVar(&primaryOnly, "primary", false, "Only list weapon-holding slots")
	return cmd
}

func slotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slot <code>",
		Short: "Show the equipment slot printed as a single-character code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, size := utf8.DecodeRuneInString(args[0])
			if size == 0 || size != len(args[0]) {
				return fmt.Errorf("slot code must be a single character, got %q", args[0])
			}
			s, ok := inventory.SlotByCode(r)
			if !ok {
				return fmt.Errorf("unknown slot code %q", args[0])
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, newSlotView(s))
		},
	}
}

func scriptCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "script <hook> [args...]",
		Short: "Call a hook defined by the configured Lua gear-filter scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.Scripting.Dir
			}
			if dir == "" {
				return errors.New("no script directory: set scripting.dir or pass --dir")
			}
			mgr := scripting.NewManager(a.taxonomy, a.logger)
			defer mgr.Close()
			if err := mgr.LoadGlobal(dir, a.cfg.Scripting.InstructionLimit); err != nil {
				return err
			}
			hookArgs := make([]lua.LValue, 0, len(args)-1)
			for _, s := range args[1:] {
				hookArgs = append(hookArgs, lua.LString(s))
			}
			ret, err := mgr.CallHook("cli", args[0], hookArgs...)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, scripting.ToGo(ret))
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Script directory (overrides scripting.dir)")
	return cmd
}
