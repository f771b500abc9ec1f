package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/driver"
	"github.com/regform/registration-contract-tests/framework"
	"github.com/regform/registration-contract-tests/regtests"
)

const siteQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	cfg, err := params.BuildConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	harness := framework.NewTestHarness(cfg.BaseURL, mainDebugLogger)
	if cfg.Driver == config.DriverPlaywright {
		if err := harness.AwaitSite(siteQueryTimeout, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Site error: %s\n", err)
			os.Exit(1)
		}
	}
	d, err := launchDriver(cfg, harness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not start browser: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := regtests.RunTestSuite(harness, d, cfg, params.filters.AsFilter, testLogger)
	if err := d.Close(); err != nil {
		mainDebugLogger.Printf("Error closing browser: %s", err)
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		var failed []framework.TestID
		for _, f := range results.Failures {
			failed = append(failed, f.TestID)
		}
		fmt.Println()
		fmt.Println("To run only the failed tests:")
		fmt.Printf("  %s\n", params.RerunCommand(os.Args[0], failed))
		os.Exit(1)
	}
}

func launchDriver(cfg config.Config, harness *framework.TestHarness) (driver.Driver, error) {
	if cfg.Driver == config.DriverSimulated {
		fmt.Println("Using the simulated registration form")
		return driver.NewSimulator(driver.SimulatorOptions{
			Locators: cfg.Locators,
			Colors:   cfg.Colors,
		}), nil
	}
	return driver.LaunchPlaywright(driver.PlaywrightOptions{
		BaseURL:     cfg.BaseURL,
		Browser:     cfg.Browser,
		Headless:    cfg.Headless,
		SlowMo:      time.Duration(cfg.SlowMoMS.OrElse(0)) * time.Millisecond,
		Timeout:     cfg.Timeout(),
		SkipInstall: cfg.SkipInstall,
		Logger:      harness.Logger(),
	})
}
