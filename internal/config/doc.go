// Package config provides configuration loading for the arbor CLI.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. arbor.yaml (or the file given with --config)
//  3. ARBOR_ environment variables
//  4. command-line flags that were explicitly set
//
// # Configuration File Structure
//
//	log:
//	  level: debug
//	  format: json
//	render:
//	  marker_comments: false
//	  target: app
//	serve:
//	  addr: localhost:4000
//	  watch: true
//	  metrics_path: /metrics
//	publish:
//	  region: eu-west-1
//	  endpoint: http://localhost:9000
//
// Environment variables use double underscores between sections and keep
// single underscores inside keys: ARBOR_SERVE__METRICS_PATH=/m.
//
// Flags use dashes: --serve-addr, --render-marker-comments.
//
// # Usage
//
//	cfg, err := config.Load("", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.Serve.Addr)
package config
