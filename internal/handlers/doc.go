// Package handlers wires the site into HTTP routes.
package handlers
