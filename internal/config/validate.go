package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus anything the UI should
// surface before saving.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(out.API.BaseURL), "/")
	out.Autocomplete.URL = strings.TrimSpace(out.Autocomplete.URL)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.API.BaseURL == "" {
		res.addErr("api.base_url is required")
	} else if !strings.HasPrefix(out.API.BaseURL, "https://") && !strings.HasPrefix(out.API.BaseURL, "http://") {
		res.addErr("api.base_url must be an http(s) URL")
	}
	if out.API.TimeoutSeconds < 0 {
		res.addErr("api.timeout_seconds must be >= 0")
	}

	if out.Autocomplete.RequestsPerSec < 0 {
		res.addErr("autocomplete.requests_per_sec must be >= 0")
	}
	if out.Autocomplete.RequestsPerSec == 0 {
		out.Autocomplete.RequestsPerSec = 2
	}
	if out.Autocomplete.Burst <= 0 {
		out.Autocomplete.Burst = 3
	}

	if out.Credits.RefreshMinutes < 0 {
		res.addErr("credits.refresh_minutes must be >= 0")
	}

	return out, res
}
