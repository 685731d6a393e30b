// Package values holds immutable value objects: canonical element names and
// order-independent recipe keys.
package values
