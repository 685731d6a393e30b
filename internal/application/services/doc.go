// Package services orchestrates use cases over the domain: combining
// elements, loading and saving sessions, and the Game facade used by the CLI.
package services
