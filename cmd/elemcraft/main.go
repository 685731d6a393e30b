// Package main provides the elemcraft CLI, an elemental crafting game engine.
package main

func main() {
	Execute()
}
