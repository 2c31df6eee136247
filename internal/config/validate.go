package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.View.validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}

	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", a.BaseURL)
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")

	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}

func (v *ViewConfig) validate() error {
	if _, err := language.Parse(v.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", v.Locale, err)
	}
	if v.TopCategories <= 0 {
		return fmt.Errorf("top_categories must be > 0 (got %d)", v.TopCategories)
	}
	if v.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", v.RecentLimit)
	}
	if v.ActivityLimit <= 0 {
		return fmt.Errorf("activity_limit must be > 0 (got %d)", v.ActivityLimit)
	}
	return nil
}
