// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - BaseURL: Origin used to build share links (default: http://localhost:<port>)
  - DatabaseURL: Connection string for the local poll cache
    (default: file:quickly-meet.db for sqlite; required for postgres)
  - DatabaseType: sqlite (default) or postgres
  - Debounce: Quiet period before persisting a mutation (default: 500ms)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-base-url     Share-link origin
	-debounce-ms  Persistence debounce in milliseconds

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BASE_URL      → -base-url
	DEBOUNCE_MS   → -debounce-ms

CLI flags take precedence over environment variables.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	kv, err := store.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(kv, cfg)
*/
package cliparse
