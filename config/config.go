package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

const (
	DriverPlaywright = "playwright"
	DriverSimulated  = "simulated"

	defaultTimeoutMS = 5000
)

// Browsers that the playwright driver can launch.
var Browsers = []string{"chromium", "firefox", "webkit"}

// BorderColors are the computed border-color values of an input in each state.
type BorderColors struct {
	Valid   string
	Invalid string
}

// Config holds everything the test run needs to know about the site and the browser.
type Config struct {
	BaseURL       string
	Driver        string
	Browser       string
	Headless      bool
	SkipInstall   bool
	SlowMoMS      ldvalue.OptionalInt
	TimeoutMS     ldvalue.OptionalInt
	ScreenshotDir string
	Colors        BorderColors
	Locators      Locators
}

type fileConfig struct {
	BaseURL       string            `yaml:"baseUrl"`
	Driver        string            `yaml:"driver"`
	Browser       string            `yaml:"browser"`
	Headless      *bool             `yaml:"headless"`
	SlowMoMS      *int              `yaml:"slowMoMs"`
	TimeoutMS     *int              `yaml:"timeoutMs"`
	ScreenshotDir string            `yaml:"screenshotDir"`
	BorderColors  fileBorderColors  `yaml:"borderColors"`
	Locators      map[string]string `yaml:"locators"`
}

type fileBorderColors struct {
	Valid   string `yaml:"valid"`
	Invalid string `yaml:"invalid"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Driver:   DriverPlaywright,
		Browser:  "chromium",
		Headless: true,
		Colors: BorderColors{
			Valid:   "rgb(206, 212, 218)",
			Invalid: "rgb(220, 53, 69)",
		},
		Locators: DefaultLocators(),
	}
}

// Timeout is how long a single browser operation or expectation may take.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS.OrElse(defaultTimeoutMS)) * time.Millisecond
}

// LoadFile applies the settings in a YAML file on top of c. Settings absent from the file
// are left alone.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("malformed config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Driver != "" {
		c.Driver = fc.Driver
	}
	if fc.Browser != "" {
		c.Browser = fc.Browser
	}
	if fc.Headless != nil {
		c.Headless = *fc.Headless
	}
	if fc.SlowMoMS != nil {
		c.SlowMoMS = ldvalue.NewOptionalIntFromPointer(fc.SlowMoMS)
	}
	if fc.TimeoutMS != nil {
		c.TimeoutMS = ldvalue.NewOptionalIntFromPointer(fc.TimeoutMS)
	}
	if fc.ScreenshotDir != "" {
		c.ScreenshotDir = fc.ScreenshotDir
	}
	if fc.BorderColors.Valid != "" {
		c.Colors.Valid = fc.BorderColors.Valid
	}
	if fc.BorderColors.Invalid != "" {
		c.Colors.Invalid = fc.BorderColors.Invalid
	}
	if len(fc.Locators) > 0 {
		overrides := make(Locators, len(fc.Locators))
		for k, v := range fc.Locators {
			overrides[ElementID(k)] = v
		}
		c.Locators = c.Locators.Merge(overrides)
	}
	return nil
}

// ApplyEnv applies environment variable overrides. getenv is normally os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("REGFORM_BASE_URL"); v != "" {
		c.BaseURL = v
	} else if v := getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := getenv("REGFORM_BROWSER"); v != "" {
		c.Browser = v
	}
	if v := getenv("HEADLESS"); v != "" {
		c.Headless = v != "false"
	}
	if getenv("PLAYWRIGHT_PREINSTALLED") == "1" {
		c.SkipInstall = true
	}
	if v := getenv("REGFORM_SCREENSHOTS"); v != "" {
		c.ScreenshotDir = v
	}
	for name, target := range map[string]*ldvalue.OptionalInt{
		"SLOW_MO":            &c.SlowMoMS,
		"REGFORM_TIMEOUT_MS": &c.TimeoutMS,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", name, v)
		}
		*target = ldvalue.NewOptionalInt(n)
	}
	return nil
}

// Validate checks the configuration for a test run.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPlaywright:
		if c.BaseURL == "" {
			return errors.New("a base URL is required for the playwright driver")
		}
		if !isKnownBrowser(c.Browser) {
			return fmt.Errorf("unknown browser %q; must be one of %s", c.Browser, strings.Join(Browsers, ", "))
		}
	case DriverSimulated:
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	if c.Colors.Valid == "" || c.Colors.Invalid == "" {
		return errors.New("both border colors must be set")
	}
	return c.Locators.Validate()
}

func isKnownBrowser(name string) bool {
	for _, b := range Browsers {
		if b == name {
			return true
		}
	}
	return false
}
