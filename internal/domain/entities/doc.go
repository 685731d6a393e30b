// Package entities contains the world aggregate and its parts: the element
// vocabulary, the recipe table, the discovered set and the seed bundle.
package entities
