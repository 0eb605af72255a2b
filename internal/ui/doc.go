// Package ui turns command lifecycle events into short console messages for
// the human-readable log format.
package ui
