// Package services implements the pure domain logic of crafting: tag
// inheritance, override rules, name generation with collision handling, and
// world reconciliation. Nothing here performs I/O.
package services
