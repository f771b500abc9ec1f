package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/regform/registration-contract-tests/framework"
)

const computedStyleScript = `(el, property) => window.getComputedStyle(el).getPropertyValue(property)`

// PlaywrightOptions configures LaunchPlaywright.
type PlaywrightOptions struct {
	BaseURL     string
	Browser     string // chromium, firefox or webkit
	Headless    bool
	SlowMo      time.Duration
	Timeout     time.Duration
	SkipInstall bool
	Logger      framework.Logger
}

type playwrightDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    PlaywrightOptions
}

type playwrightSession struct {
	context playwright.BrowserContext
	page    playwright.Page
	logger  framework.Logger
}

type playwrightElement struct {
	selector string
	locator  playwright.Locator
	logger   framework.Logger
}

// LaunchPlaywright starts playwright and launches a browser. Unless SkipInstall is set, the
// playwright driver and the requested browser are installed first if necessary.
func LaunchPlaywright(opts PlaywrightOptions) (Driver, error) {
	if opts.Logger == nil {
		opts.Logger = framework.NullLogger()
	}
	if opts.Browser == "" {
		opts.Browser = "chromium"
	}
	if !opts.SkipInstall {
		opts.Logger.Printf("Installing playwright for %s", opts.Browser)
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{opts.Browser}}); err != nil {
			return nil, fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch opts.Browser {
	case "chromium":
		browserType = pw.Chromium
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		_ = pw.Stop()
		return nil, fmt.Errorf("unknown browser %q", opts.Browser)
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	opts.Logger.Printf("Launched %s %s (headless: %t)", opts.Browser, browser.Version(), opts.Headless)

	return &playwrightDriver{pw: pw, browser: browser, opts: opts}, nil
}

func (d *playwrightDriver) NewSession(logger framework.Logger) (Session, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	context, err := d.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(d.opts.BaseURL),
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	if d.opts.Timeout > 0 {
		page.SetDefaultTimeout(float64(d.opts.Timeout.Milliseconds()))
	}
	return &playwrightSession{context: context, page: page, logger: logger}, nil
}

func (d *playwrightDriver) Close() error {
	if err := d.browser.Close(); err != nil {
		_ = d.pw.Stop()
		return err
	}
	return d.pw.Stop()
}

func (s *playwrightSession) Navigate(path string) error {
	s.logger.Printf("Navigating to %s", path)
	if _, err := s.page.Goto(path); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", path, err)
	}
	return nil
}

func (s *playwrightSession) Locate(selector string) Element {
	return &playwrightElement{selector: selector, locator: s.page.Locator(selector), logger: s.logger}
}

func (s *playwrightSession) Click(selector string) error {
	s.logger.Printf("Clicking %s", selector)
	if err := s.page.Click(selector); err != nil {
		return fmt.Errorf("could not click %s: %w", selector, err)
	}
	return nil
}

func (s *playwrightSession) Screenshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (s *playwrightSession) Close() error {
	if err := s.page.Close(); err != nil {
		_ = s.context.Close()
		return err
	}
	return s.context.Close()
}

func (e *playwrightElement) Fill(text string) error {
	e.logger.Printf("Filling %s with %q", e.selector, text)
	if err := e.locator.Fill(text); err != nil {
		return fmt.Errorf("could not fill %s: %w", e.selector, err)
	}
	return nil
}

func (e *playwrightElement) Click() error {
	e.logger.Printf("Clicking %s", e.selector)
	if err := e.locator.Click(); err != nil {
		return fmt.Errorf("could not click %s: %w", e.selector, err)
	}
	return nil
}

func (e *playwrightElement) TextContent() (string, error) {
	text, err := e.locator.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read text of %s: %w", e.selector, err)
	}
	return text, nil
}

func (e *playwrightElement) ComputedStyle(property string) (string, error) {
	value, err := e.locator.Evaluate(computedStyleScript, property)
	if err != nil {
		return "", fmt.Errorf("could not read %s of %s: %w", property, e.selector, err)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("computed %s of %s was not a string: %v", property, e.selector, value)
	}
	return s, nil
}

func (e *playwrightElement) IsVisible() (bool, error) {
	return e.locator.IsVisible()
}

func (e *playwrightElement) IsDisabled() (bool, error) {
	return e.locator.IsDisabled()
}
