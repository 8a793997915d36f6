// Package services implements the driving port interfaces.
// Services contain the core pipeline logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. A run is synchronous and keeps no
// state between invocations.
package services
