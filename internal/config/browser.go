package config

import (
	"fmt"
	"strconv"
	"time"
)

// Default browser settings. The registration scenario runs at a fixed
// desktop viewport in a visible window unless told otherwise.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultBrowserTimeout = 30 * time.Second
)

// BrowserConfig holds settings for the browser-driven registration tests
type BrowserConfig struct {
	Headless       bool
	SlowMo         time.Duration
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration
}

// LoadBrowserConfig loads browser configuration from environment variables.
//
// HEADLESS=true hides the browser window; any other value keeps it visible.
// SLOW_MO and BROWSER_TIMEOUT are milliseconds.
func LoadBrowserConfig(getenv func(string) string) (BrowserConfig, error) {
	config := BrowserConfig{
		Headless:       getenv("HEADLESS") == "true",
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
		Timeout:        DefaultBrowserTimeout,
	}

	if v := getenv("SLOW_MO"); v != "" {
		ms, err := parsePositiveInt("SLOW_MO", v, true)
		if err != nil {
			return BrowserConfig{}, err
		}
		config.SlowMo = time.Duration(ms) * time.Millisecond
	}

	if v := getenv("BROWSER_TIMEOUT"); v != "" {
		ms, err := parsePositiveInt("BROWSER_TIMEOUT", v, false)
		if err != nil {
			return BrowserConfig{}, err
		}
		config.Timeout = time.Duration(ms) * time.Millisecond
	}

	if v := getenv("VIEWPORT_WIDTH"); v != "" {
		w, err := parsePositiveInt("VIEWPORT_WIDTH", v, false)
		if err != nil {
			return BrowserConfig{}, err
		}
		config.ViewportWidth = w
	}

	if v := getenv("VIEWPORT_HEIGHT"); v != "" {
		h, err := parsePositiveInt("VIEWPORT_HEIGHT", v, false)
		if err != nil {
			return BrowserConfig{}, err
		}
		config.ViewportHeight = h
	}

	return config, nil
}

// SlowMoMillis returns SlowMo in the unit the browser launcher expects
func (c BrowserConfig) SlowMoMillis() float64 {
	return float64(c.SlowMo.Milliseconds())
}

// TimeoutMillis returns Timeout in the unit the browser launcher expects
func (c BrowserConfig) TimeoutMillis() float64 {
	return float64(c.Timeout.Milliseconds())
}

func parsePositiveInt(name, value string, allowZero bool) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if n < 0 || (n == 0 && !allowZero) {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}
