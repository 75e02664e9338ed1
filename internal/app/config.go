package app

import (
	"flag"
	"strconv"
	"strings"

	"burn/internal/burn"
	"burn/internal/core"
)

// Config represents the command-line parameters shared by the burn programs.
type Config struct {
	Preset string
	TPS    float64
	Seed   int64

	Border bool
	Color  bool

	LogPath string
	Verbose bool
	Sound   bool

	Scale  int
	Pixels bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset: burn.PresetClassic,
		TPS:    core.DefaultTPS,
		Border: true,
		Color:  true,
		Scale:  2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "burn tuning: "+strings.Join(core.Names(), ", "))
	fs.Float64Var(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&c.Border, "border", c.Border, "draw a frame around the text")
	fs.BoolVar(&c.Color, "color", c.Color, "colour flames, ash and smoke")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write logs to this file")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose development logging")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "crackle when cells ignite (needs the audio build tag)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier (GUI)")
	fs.BoolVar(&c.Pixels, "pixels", c.Pixels, "draw one pixel per cell instead of glyphs (GUI)")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// SimConfig builds the registry configuration map for a rows x cols grid.
// Overrides win over the seed but never over the grid size.
func (c *Config) SimConfig(rows, cols int) map[string]string {
	cfg := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	for k, v := range c.Overrides.Map() {
		cfg[k] = v
	}
	cfg["rows"] = strconv.Itoa(rows)
	cfg["cols"] = strconv.Itoa(cols)
	return cfg
}

// NewSim looks up the configured preset and builds a simulation sized
// rows x cols.
func (c *Config) NewSim(rows, cols int) (core.Sim, error) {
	factory, ok := core.Sims()[c.Preset]
	if !ok {
		return nil, &UnknownPresetError{Name: c.Preset}
	}
	return factory(c.SimConfig(rows, cols)), nil
}

// UnknownPresetError reports a -preset value with no registered factory.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return "unknown preset " + strconv.Quote(e.Name) + " (have " + strings.Join(core.Names(), ", ") + ")"
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a map. Malformed entries are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
