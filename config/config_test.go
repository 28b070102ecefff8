package config

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testConf = `
interactive = true

[tracing]
adapter = "test"

[tracelevel]
root = "Info"
"slrgen.lr" = "Debug"

[tracelevel.slrgen]
scanner = "Error"

[slrgen]
max-states = 4096
max-steps = "500"
`

func TestLoadString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	c, err := LoadString(testConf)
	if err != nil {
		t.Fatal(err)
	}
	if v := c.GetString("tracing.adapter"); v != "test" {
		t.Errorf("expected tracing.adapter = test, is %q", v)
	}
	if v := c.GetInt("slrgen.max-states"); v != 4096 {
		t.Errorf("expected max-states = 4096, is %d", v)
	}
	if v := c.GetInt("slrgen.max-steps"); v != 500 {
		t.Errorf("expected string value to convert to 500, is %d", v)
	}
	if v := c.GetInt("slrgen.max-passes"); v != 0 {
		t.Errorf("expected unset integer to be 0, is %d", v)
	}
	if !c.GetBool("interactive") || !c.IsInteractive() {
		t.Errorf("expected interactive to be set")
	}
	if c.GetString("slrgen") != "" {
		t.Errorf("expected table not to be a string value")
	}
}

func TestQuotedAndNestedKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	c, err := LoadString(testConf)
	if err != nil {
		t.Fatal(err)
	}
	if v := c.GetString("tracelevel.slrgen.lr"); v != "Debug" {
		t.Errorf("expected quoted key to be found, have %q", v)
	}
	if v := c.GetString("tracelevel.slrgen.scanner"); v != "Error" {
		t.Errorf("expected nested key to be found, have %q", v)
	}
	if c.IsSet("tracelevel.slrgen.cli") {
		t.Errorf("expected tracelevel for slrgen.cli to be unset")
	}
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	c := New("")
	if c.IsSet("tracing.adapter") {
		t.Errorf("expected empty configuration before InitDefaults")
	}
	c.InitDefaults()
	if v := c.GetString("tracing.adapter"); v != "go" {
		t.Errorf("expected default adapter go, have %q", v)
	}
	if v := c.GetString("tracelevel.slrgen.cli"); v != "Error" {
		t.Errorf("expected default trace level Error, have %q", v)
	}
	c.Set("tracing.adapter", "test")
	if v := c.GetString("tracing.adapter"); v != "test" {
		t.Errorf("expected value to override default, have %q", v)
	}
	c.Set("slrgen.max-steps", 7)
	if v := c.GetInt("slrgen.max-steps"); v != 7 {
		t.Errorf("expected max-steps = 7, have %d", v)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	if _, err := LoadString("[tracing\nadapter = "); err == nil {
		t.Errorf("expected malformed TOML to be rejected")
	}
	if _, err := Load("does/not/exist.toml"); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}

func TestConfigureTracing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	c, err := LoadString(testConf)
	if err != nil {
		t.Fatal(err)
	}
	if err = ConfigureTracing(c); err != nil {
		t.Fatal(err)
	}
	if v := gconf.GetInt("slrgen.max-states"); v != 4096 {
		t.Errorf("expected global configuration to be installed, max-states = %d", v)
	}
	if l := tracing.Select("slrgen.lr").GetTraceLevel(); l != tracing.LevelDebug {
		t.Errorf("expected tracer slrgen.lr at level Debug, is %s", l)
	}
	if l := tracing.Select("slrgen.scanner").GetTraceLevel(); l != tracing.LevelError {
		t.Errorf("expected tracer slrgen.scanner at level Error, is %s", l)
	}
}
