package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/framework"
)

type commandParams struct {
	configFile    string
	siteURL       string
	driver        string
	browser       string
	headless      bool
	skipInstall   bool
	slowMoMS      int
	timeoutMS     int
	screenshotDir string
	filters       framework.RegexFilters
	debug         bool
	debugAll      bool
	noColor       bool

	// names of the flags that were given explicitly, so they can override the config file
	set map[string]bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.configFile, "config", "", "YAML file with site, browser and locator settings")
	fs.StringVar(&c.siteURL, "url", "", "base URL of the site under test")
	fs.StringVar(&c.driver, "driver", config.DriverPlaywright, "browser driver: playwright or simulated")
	fs.StringVar(&c.browser, "browser", "chromium", "browser to launch: "+strings.Join(config.Browsers, ", "))
	fs.BoolVar(&c.headless, "headless", true, "run the browser without a window")
	fs.BoolVar(&c.skipInstall, "skip-install", false, "assume the browser is already installed")
	fs.IntVar(&c.slowMoMS, "slow-mo", 0, "delay in milliseconds after each browser operation")
	fs.IntVar(&c.timeoutMS, "timeout", 0, "timeout in milliseconds for each browser operation and expectation")
	fs.StringVar(&c.screenshotDir, "screenshots", "", "directory for screenshots of failed tests")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	c.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })
	return true
}

// BuildConfig layers the defaults, the config file, the environment and the command line,
// in that order.
func (c *commandParams) BuildConfig(getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if c.configFile != "" {
		if err := cfg.LoadFile(c.configFile); err != nil {
			return cfg, fmt.Errorf("could not read config file %s: %w", c.configFile, err)
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	if c.set["url"] {
		cfg.BaseURL = c.siteURL
	}
	if c.set["driver"] {
		cfg.Driver = c.driver
	}
	if c.set["browser"] {
		cfg.Browser = c.browser
	}
	if c.set["headless"] {
		cfg.Headless = c.headless
	}
	if c.set["skip-install"] {
		cfg.SkipInstall = c.skipInstall
	}
	if c.set["slow-mo"] {
		cfg.SlowMoMS = ldvalue.NewOptionalInt(c.slowMoMS)
	}
	if c.set["timeout"] {
		cfg.TimeoutMS = ldvalue.NewOptionalInt(c.timeoutMS)
	}
	if c.set["screenshots"] {
		cfg.ScreenshotDir = c.screenshotDir
	}
	return cfg, cfg.Validate()
}

// RerunCommand returns a command line that repeats this run for only the given tests.
func (c *commandParams) RerunCommand(program string, failed []framework.TestID) string {
	var b commandBuilder
	b.add(program)
	for _, name := range []string{"config", "url", "driver", "browser", "screenshots"} {
		if c.set[name] {
			b.add("-"+name, c.stringFlag(name))
		}
	}
	if c.set["headless"] {
		b.add(fmt.Sprintf("-headless=%t", c.headless))
	}
	if c.set["timeout"] {
		b.add("-timeout", fmt.Sprint(c.timeoutMS))
	}
	for _, id := range failed {
		b.add("-run", exactPathPattern(id))
	}
	if c.debug || c.debugAll {
		b.add("-debug")
	}
	return b.String()
}

func (c *commandParams) stringFlag(name string) string {
	switch name {
	case "config":
		return c.configFile
	case "url":
		return c.siteURL
	case "driver":
		return c.driver
	case "browser":
		return c.browser
	case "screenshots":
		return c.screenshotDir
	}
	return ""
}

// exactPathPattern matches one test, quoting each path element so that the slashes still
// separate levels.
func exactPathPattern(id framework.TestID) string {
	parts := make([]string, 0, len(id.Path))
	for _, p := range id.Path {
		parts = append(parts, "^"+regexp.QuoteMeta(p)+"$")
	}
	return strings.Join(parts, "/")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
