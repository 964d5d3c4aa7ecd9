package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load. Flags of the same meaning win.
const (
	EnvGifDir = "EVORUN_GIF_DIR"
	EnvScale  = "EVORUN_SCALE"
	EnvSound  = "EVORUN_SOUND"
	EnvDebug  = "EVORUN_DEBUG"
	EnvSeed   = "EVORUN_SEED"

	MaxScale = 4
)

type Config struct {
	GifDir string
	Scale  int
	Sound  bool
	Debug  bool
	Seed   int64 // 0 picks a time-based seed
}

func Default() Config {
	return Config{
		GifDir: "gifs",
		Scale:  1,
		Sound:  true,
	}
}

// Load reads envFile (if present) into the environment, applies
// environment overrides to the defaults, then parses args as flags.
func Load(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("evorun", flag.ContinueOnError)
	fset.StringVar(&cfg.GifDir, "gifs", cfg.GifDir, "folder holding the reaction GIFs")
	fset.IntVar(&cfg.Scale, "scale", cfg.Scale, "window scale factor (1-4)")
	fset.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every session transition")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for arrow directions (0 = time based)")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v, ok := lookup(EnvGifDir); ok {
		c.GifDir = v
	}
	if v, ok := lookup(EnvScale); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvScale, err)
		}
		c.Scale = n
	}
	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = b
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("scale %d out of range 1-%d", c.Scale, MaxScale)
	}
	if c.GifDir == "" {
		return errors.New("gif folder is empty")
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
