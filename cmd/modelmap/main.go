// ABOUTME: CLI entry point for modelmap
// ABOUTME: Parses flags, loads the mapping store, dispatches subcommands

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mauromedda/modelmap/internal/catalog"
	"github.com/mauromedda/modelmap/internal/eventbus"
	mmlog "github.com/mauromedda/modelmap/internal/log"
	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/migrate"
	"github.com/mauromedda/modelmap/internal/reasoning"
	"github.com/mauromedda/modelmap/internal/store"
	"github.com/mauromedda/modelmap/internal/updater"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("modelmap %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired engine for subcommand handlers.
type app struct {
	file     *store.File
	store    *mapping.Store
	updater  *updater.Updater
	codec    reasoning.Codec
	slots    []mapping.RoleSlot
	rules    []migrate.Rule
	models   []catalog.Model
	gptSet   reasoning.ModelSet
	bus      *eventbus.Bus
	renderer *renderer
}

func run(args cliArgs) error {
	if args.verbose {
		mmlog.SetLevel(mmlog.LevelDebug)
	}

	a, err := buildApp(args)
	if err != nil {
		return err
	}

	rest := args.remaining()
	if len(rest) == 0 {
		return a.cmdList()
	}

	cmd, cmdArgs := rest[0], rest[1:]
	ctx := context.Background()

	switch cmd {
	case "list":
		return a.cmdList()
	case "roles":
		return a.cmdRoles()
	case "models":
		return a.cmdModels(cmdArgs)
	case "enable":
		return a.cmdEnable(ctx, cmdArgs)
	case "disable":
		return a.cmdDisable(ctx, cmdArgs)
	case "set-target":
		return a.cmdSetTarget(ctx, cmdArgs)
	case "set-level":
		return a.cmdSetLevel(ctx, cmdArgs)
	case "level":
		return a.cmdLevelAll(ctx, cmdArgs)
	case "add":
		return a.cmdAdd(ctx, cmdArgs)
	case "remove":
		return a.cmdRemove(ctx, cmdArgs)
	case "migrate":
		return a.cmdMigrate()
	case "watch":
		return a.cmdWatch()
	default:
		return fmt.Errorf("unknown command %q (try: list, roles, models, enable, disable, set-target, set-level, level, add, remove, migrate, watch)", cmd)
	}
}

// buildApp loads defaults, applies --catalog overrides, loads and migrates
// the mapping file, and wires the updater.
func buildApp(args cliArgs) (*app, error) {
	slots := mapping.DefaultRoleSlots()
	rules := migrate.DefaultRules()
	prefixes := reasoning.DefaultVendorPrefixes
	gptSet := reasoning.DefaultGPTModels()
	models := catalog.Default()

	if args.catalog != "" {
		cf, err := loadCatalogFile(args.catalog)
		if err != nil {
			return nil, err
		}
		if len(cf.Roles) > 0 {
			slots = cf.Roles
		}
		if len(cf.Migrations) > 0 {
			rules = cf.Migrations
		}
		if len(cf.Prefixes) > 0 {
			prefixes = cf.Prefixes
		}
		if len(cf.GPTModels) > 0 {
			gptSet = reasoning.NewModelSet(cf.GPTModels...)
		}
		if len(cf.Models) > 0 {
			models = cf.Models
		}
	}

	file := store.NewFile(args.config)
	entries, migrated := file.LoadAndMigrate(rules, mapping.SlotSources(slots))
	if migrated {
		mmlog.Info("applied mapping migrations on load")
	}

	st := mapping.NewStore(entries)
	bus := eventbus.New()
	codec := reasoning.Codec{Prefixes: prefixes}

	up := updater.New(updater.Config{
		Store: st,
		Persist: func(_ context.Context, mappings []mapping.ModelMapping) error {
			return file.Save(mappings)
		},
		ModelSet: func() reasoning.ModelSet { return gptSet },
		Codec:    codec,
		Slots:    slots,
		Bus:      bus,
	})

	return &app{
		file:     file,
		store:    st,
		updater:  up,
		codec:    codec,
		slots:    slots,
		rules:    rules,
		models:   models,
		gptSet:   gptSet,
		bus:      bus,
		renderer: newRenderer(args.noColor),
	}, nil
}

func (a *app) cmdList() error {
	a.renderer.roleTable(a.slots, a.store, a.codec, a.gptSet)
	a.renderer.customTable(a.store, a.slots)
	if level, ok := reasoning.UniformLevel(a.store.All(), a.codec, a.gptSet); ok {
		fmt.Printf("uniform level: %s\n", level)
	} else {
		fmt.Println("uniform level: mixed")
	}
	return nil
}

func (a *app) cmdRoles() error {
	for _, s := range a.slots {
		fmt.Printf("  %-8s %-12s %s (%s)\n", s.ID, s.DisplayName, s.SourceModel, s.SourceLabel)
	}
	return nil
}

func (a *app) cmdModels(args []string) error {
	query := strings.Join(args, " ")
	a.renderer.modelTable(catalog.Search(query, a.models), a.codec, a.gptSet, a.codec.Prefixes)
	return nil
}

func (a *app) cmdEnable(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: enable <role> [target]")
	}
	target := ""
	if len(args) > 1 {
		target = args[1]
	}
	if err := a.updater.EnableRole(ctx, args[0], target); err != nil {
		return err
	}
	return a.cmdList()
}

func (a *app) cmdDisable(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: disable <role>")
	}
	if err := a.updater.DisableRole(ctx, args[0]); err != nil {
		return err
	}
	return a.cmdList()
}

func (a *app) cmdSetTarget(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set-target <role> <model>")
	}
	status, err := a.updater.SetTarget(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", args[0], status)
	return nil
}

func (a *app) cmdSetLevel(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set-level <role> <level>")
	}
	level, err := reasoning.ParseLevel(args[1])
	if err != nil {
		return err
	}
	status, err := a.updater.UpdateLevel(ctx, args[0], level)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", args[0], status)
	return nil
}

// cmdLevelAll applies one level to every active role. Saves run
// concurrently; Close reports the first failure.
func (a *app) cmdLevelAll(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: level <level>")
	}
	level, err := reasoning.ParseLevel(args[0])
	if err != nil {
		return err
	}
	for _, slot := range a.slots {
		if !a.store.Active(slot.SourceModel) {
			continue
		}
		status, err := a.updater.UpdateLevelAsync(ctx, slot.ID, level)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", slot.ID, status)
	}
	return a.updater.Close()
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: add <source-model> <target>")
	}
	m, err := a.updater.AddCustom(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("added %s -> %s (id %s)\n", m.SourceModel, m.Target, m.ID)
	return nil
}

func (a *app) cmdRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <source-model>")
	}
	if err := a.updater.RemoveCustom(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

// cmdMigrate re-runs migration explicitly against the loaded collection.
// Load already migrated opportunistically, so this normally reports clean.
func (a *app) cmdMigrate() error {
	out, migrated := migrate.Migrate(a.store.All(), a.rules, mapping.SlotSources(a.slots))
	if !migrated {
		fmt.Println("mappings already up to date")
		return nil
	}
	a.store.Replace(out)
	if err := a.file.Save(out); err != nil {
		return err
	}
	a.bus.Publish(eventbus.Event{Kind: eventbus.KindMigrated})
	fmt.Println("mappings migrated")
	return nil
}

// cmdWatch reloads the store when the mappings file changes externally and
// prints change events until interrupted.
func (a *app) cmdWatch() error {
	unsubscribe := a.bus.Subscribe(func(ev eventbus.Event) {
		if ev.SourceModel != "" {
			fmt.Printf("event: %s %s -> %s\n", ev.Kind, ev.SourceModel, ev.Target)
			return
		}
		fmt.Printf("event: %s\n", ev.Kind)
	})
	defer unsubscribe()

	w := store.NewWatcher(a.file.Path(), func() {
		a.store.Replace(a.file.Load())
		a.bus.Publish(eventbus.Event{Kind: eventbus.KindReloaded})
	})
	w.Start()
	defer w.Stop()

	fmt.Printf("watching %s\n", a.file.Path())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
