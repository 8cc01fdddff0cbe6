// Package preview serves a manifest as a live page.
//
// The server keeps one session mounted for the lifetime of the process.
// Store assignments posted to /stores/{name} update the mounted tree in
// place, and every connected browser receives the new body over a
// WebSocket. With watching enabled the manifest is reloaded when its file
// changes; store values survive the reload.
//
// # Routes
//
//	GET  /               the rendered page
//	GET  /ws             body updates
//	GET  /stores         current store values as JSON
//	POST /stores/{name}  set a store from a JSON body
//	GET  /metrics        Prometheus metrics (path configurable)
package preview
