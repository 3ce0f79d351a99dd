//go:build !linux

package rawinput

// DefaultBackend is used when Open is given an empty name.
const DefaultBackend = "hook"
