//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/abcmobile/registration/internal/config"
)

// Shared for the whole run. Tests only read these.
var (
	pw            *playwright.Playwright
	browser       playwright.Browser
	browserConfig config.BrowserConfig
)

// TestMain starts one browser for all tests and shuts it down when they finish.
// Run with: go test -tags e2e -v ./e2e/
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	if err := startBrowser(log); err != nil {
		log.Error("browser setup failed, no tests were run", zap.Error(err))
		return 1
	}
	defer stopBrowser(log)

	return m.Run()
}

func startBrowser(log *zap.Logger) error {
	var err error

	browserConfig, err = config.LoadBrowserConfig(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid browser config: %w", err)
	}

	// CI images ship the driver and browsers already
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return fmt.Errorf("could not install playwright: %w", err)
		}
	}

	pw, err = playwright.Run()
	if err != nil {
		return fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(browserConfig.Headless),
		SlowMo:   playwright.Float(browserConfig.SlowMoMillis()),
	})
	if err != nil {
		pw.Stop()
		pw = nil
		return fmt.Errorf("could not launch browser: %w", err)
	}

	log.Info("browser started",
		zap.String("version", browser.Version()),
		zap.Bool("headless", browserConfig.Headless),
		zap.Int("viewport_width", browserConfig.ViewportWidth),
		zap.Int("viewport_height", browserConfig.ViewportHeight))
	return nil
}

func stopBrowser(log *zap.Logger) {
	if browser != nil {
		if err := browser.Close(); err != nil {
			log.Warn("could not close browser", zap.Error(err))
		}
	}
	if pw != nil {
		if err := pw.Stop(); err != nil {
			log.Warn("could not stop playwright", zap.Error(err))
		}
	}
}
