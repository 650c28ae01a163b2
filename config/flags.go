package config

import (
	"flag"
	"strings"
)

// Flags are CLI overrides, the highest priority source.
type Flags struct {
	Path     *string
	Debug    *bool
	Modes    *string
	Strategy *string
	Capacity *int
	Memory   *string
	Script   *string
	LogFile  *string
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Path:     fs.String("config", "", "path to config file"),
		Debug:    fs.Bool("debug", false, "enable debug logging"),
		Modes:    fs.String("modes", "", "comma separated debug draw modes (wireframe,aabb,contact_points,...)"),
		Strategy: fs.String("buffer", "", "buffer strategy: fixed, dynamic or shared"),
		Capacity: fs.Int("capacity", 0, "buffer capacity in vertices"),
		Memory:   fs.String("memory", "", "handle memory: heap or vectors"),
		Script:   fs.String("scene", "", "path to a tengo scene script"),
		LogFile:  fs.String("log", "", "log file path"),
	}
}

// Apply writes set flags over cfg.
func (f *Flags) Apply(cfg *Config) {
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.Modes != "" {
		cfg.Debug.Modes = strings.Split(*f.Modes, ",")
	}
	if *f.Strategy != "" {
		cfg.Buffer.Strategy = *f.Strategy
	}
	if *f.Capacity > 0 {
		cfg.Buffer.Capacity = *f.Capacity
	}
	if *f.Memory != "" {
		cfg.Debug.Memory = *f.Memory
	}
	if *f.Script != "" {
		cfg.Scene.Script = *f.Script
	}
	if *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
}
