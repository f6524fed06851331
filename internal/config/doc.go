// Package config loads, validates, and normalizes the extsort configuration.
//
// Configuration lives in a TOML file. Lookup order is the explicit --config
// path, then ~/.config/extsort/config.toml, then ./extsort.toml. Missing files
// fall back to repository defaults, so the tool runs with no configuration at
// all. All path fields are tilde-expanded and made absolute during load.
package config
