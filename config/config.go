package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pelletier/go-toml"
)

// AppTag identifies slrgen when searching for configuration files at the
// standard locations, see schuko.LocateConfig.
const AppTag = "slrgen"

// TraceKeys are the tracer names of slrgen's packages.
var TraceKeys = []string{"slrgen.lr", "slrgen.scanner", "slrgen.cli"}

// TConf represents a configuration backed by a TOML tree.
type TConf struct {
	tree     *toml.Tree
	defaults map[string]interface{}
	tag      string
}

var _ schuko.Configuration = &TConf{}

// New creates an empty configuration. If appTag is non-empty, InitDefaults
// will search for a configuration file at the standard locations.
func New(appTag string) *TConf {
	tree, _ := toml.TreeFromMap(map[string]interface{}{})
	return &TConf{
		tree:     tree,
		defaults: make(map[string]interface{}),
		tag:      appTag,
	}
}

// Load reads a TOML configuration file.
func Load(path string) (*TConf, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration %q: %w", path, err)
	}
	c := New("")
	c.tree = tree
	return c, nil
}

// LoadString reads a configuration from TOML text.
func LoadString(text string) (*TConf, error) {
	tree, err := toml.Load(text)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	c := New("")
	c.tree = tree
	return c, nil
}

// Tree returns the underlying TOML tree.
func (c *TConf) Tree() *toml.Tree {
	return c.tree
}

// InitDefaults installs default values for keys not present in the TOML tree:
// tracing goes to the Go log adapter and all tracers start with level Error.
// If the configuration has been created with an app tag, a configuration
// file found at the standard locations is merged in first.
func (c *TConf) InitDefaults() {
	if c.tag != "" {
		c.InitFromDefaultFile()
	}
	c.defaults["tracing.adapter"] = "go"
	c.defaults["tracelevel.root"] = "Error"
	for _, key := range TraceKeys {
		c.defaults["tracelevel."+key] = "Error"
	}
}

// InitFromDefaultFile searches for a TOML file at the OS-dependent standard
// locations and loads the first one found. Keys already set take precedence.
func (c *TConf) InitFromDefaultFile() {
	files := schuko.LocateConfig(c.tag, "", []string{"toml", "tml"})
	for _, path := range files {
		tree, err := toml.LoadFile(path)
		if err != nil {
			tracing.Errorf("cannot load configuration %q: %v", path, err)
			continue
		}
		for _, key := range tree.Keys() {
			if !c.tree.Has(key) {
				c.tree.SetPath([]string{key}, tree.GetPath([]string{key}))
			}
		}
		return
	}
}

// Set overrides a configuration value.
func (c *TConf) Set(key string, value interface{}) {
	c.tree.SetPath(strings.Split(key, "."), value)
}

// IsSet is a predicate: is a value present for key?
func (c *TConf) IsSet(key string) bool {
	return c.lookup(key) != nil
}

// GetString returns a configuration value as a string. Non-string values are
// formatted.
func (c *TConf) GetString(key string) string {
	switch v := c.lookup(key).(type) {
	case nil:
		return ""
	case string:
		return v
	case *toml.Tree:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns a configuration value as an integer, or 0.
func (c *TConf) GetInt(key string) int {
	switch v := c.lookup(key).(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			tracing.Errorf("configuration key %q is not an integer: %q", key, v)
			return 0
		}
		return n
	}
	return 0
}

// GetBool returns a configuration value as a boolean.
func (c *TConf) GetBool(key string) bool {
	switch v := c.lookup(key).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// IsInteractive is part of schuko.Configuration; slrgen decides interactivity
// per command.
func (c *TConf) IsInteractive() bool {
	return c.GetBool("interactive")
}

// lookup searches for key in the TOML tree, then in the defaults.
// A dotted key "a.b.c" is first looked up as a nested path, then as
// table "a" holding the quoted key "b.c".
func (c *TConf) lookup(key string) interface{} {
	if key == "" {
		return nil
	}
	path := strings.Split(key, ".")
	if v := c.tree.GetPath(path); v != nil {
		return v
	}
	if len(path) > 2 {
		if v := c.tree.GetPath([]string{path[0], strings.Join(path[1:], ".")}); v != nil {
			return v
		}
	}
	if v, ok := c.defaults[key]; ok {
		return v
	}
	return nil
}

// ConfigureTracing installs conf as the global configuration and sets up
// tracing from it: trace output goes through trace2go, with trace levels
// taken from the "tracelevel" table.
func ConfigureTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
