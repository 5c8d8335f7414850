//go:build linux

// kanaime-ibus is the Linux IBus input method engine.
//
// It connects to the IBus daemon via D-Bus, types key events into a kana
// input session and shows the composing text as preedit.
//
// Installation:
//  1. Copy binary to /usr/local/bin/kanaime-ibus
//  2. Run kanaime-ibus -install to write ~/.local/share/ibus/component/kanaime.xml
//  3. Restart IBus: ibus restart
//  4. Enable via: ibus-setup or GNOME Settings > Keyboard > Input Sources
//
// Custom romaji tables named in the configuration are reloaded when they
// change if tables.watch is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sys/unix"

	"kanaime/internal/config"
	"kanaime/internal/ime"
	"kanaime/internal/logging"
)

var (
	// Version information (set at build time)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	installFlag := flag.Bool("install", false, "Install IBus component")
	uninstallFlag := flag.Bool("uninstall", false, "Uninstall IBus component")
	configPath := flag.String("config", "", "config file (default: "+config.ConfigPath()+")")
	address := flag.String("address", os.Getenv("IBUS_ADDRESS"), "IBus bus address (default: session bus)")
	flag.Bool("ibus", false, "started by the IBus daemon")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("kanaime-ibus %s (commit: %s, built: %s)\n", version, commit, buildTime)
		return
	}

	if *installFlag {
		if err := installComponent(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to install: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Installed successfully. Run 'ibus restart' to load.")
		return
	}

	if *uninstallFlag {
		if err := uninstallComponent(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to uninstall: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Uninstalled successfully.")
		return
	}

	if err := run(*configPath, *address); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openConfig writes a default config file when there is none and returns
// a loader for it.
func openConfig(path string) (*config.Loader, *config.Config, bool, error) {
	_, created, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, nil, false, err
	}
	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, false, err
	}
	return loader, cfg, created, nil
}

func run(configPath, address string) error {
	loader, cfg, created, err := openConfig(configPath)
	if err != nil {
		return err
	}
	defer loader.Close()

	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return err
	}
	logCfg.Component = "kanaime-ibus"
	log, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Close()
	logging.SetDefault(log)

	if created {
		log.Info("created default config", "path", loader.Path())
	}
	for _, w := range config.Check(cfg).Warnings() {
		log.Warn("config warning", "field", w.Field, "message", w.Message)
	}

	machine, err := cfg.MachineOptions()
	if err != nil {
		return err
	}
	tables, err := cfg.Tables.Load()
	if err != nil {
		return err
	}

	engine := ime.NewEngine(ime.Options{Machine: machine, Tables: tables, Logger: log})

	loader.OnChange(func(c *config.Config) {
		tables, err := c.Tables.Load()
		if err != nil {
			log.Error("reload tables failed", "error", err)
			return
		}
		engine.SetTables(tables)
	})
	if err := loader.Watch(); err != nil {
		log.Warn("config watch disabled", "error", err)
	}
	go func() {
		for err := range loader.Errors() {
			log.Warn("config watch", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	ibusCfg := ime.DefaultIBusConfig()
	ibusCfg.Address = address
	ibus := ime.NewIBusEngine(engine, ibusCfg, log)
	if err := ibus.Start(ctx); err != nil {
		return err
	}

	log.Info("kanaime ibus engine running",
		"version", version,
		"config", loader.Path(),
		"keyboard", machine.KeyboardType.String(),
		"locale", machine.Locale,
	)

	<-ctx.Done()
	log.Info("shutting down")

	stats := ibus.GetStats()
	log.Info("engine stats",
		"key_events", stats.KeyEvents,
		"keys_consumed", stats.KeysConsumed,
		"sessions", stats.SessionsStarted,
	)
	return ibus.Stop()
}

func componentPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "ibus", "component", "kanaime.xml"), nil
}

func installComponent() error {
	path, err := componentPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Find the binary path
	binPath, err := os.Executable()
	if err != nil {
		binPath = "/usr/local/bin/kanaime-ibus"
	}

	componentXML := `<?xml version="1.0" encoding="utf-8"?>
<component>
    <name>` + ime.KanaimeBusName + `</name>
    <description>Kana input method</description>
    <exec>` + binPath + ` -ibus</exec>
    <version>` + version + `</version>
    <author>kanaime</author>
    <license>Apache-2.0</license>
    <textdomain>kanaime</textdomain>
    <engines>
        <engine>
            <name>` + ime.KanaimeEngineName + `</name>
            <language>ja</language>
            <license>Apache-2.0</license>
            <author>kanaime</author>
            <icon>ibus-kanaime</icon>
            <layout>jp</layout>
            <longname>Kanaime</longname>
            <description>Romaji and 12-key kana input</description>
            <rank>50</rank>
            <symbol>あ</symbol>
        </engine>
    </engines>
</component>`

	return os.WriteFile(path, []byte(componentXML), 0644)
}

func uninstallComponent() error {
	path, err := componentPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}
