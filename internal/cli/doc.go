// Package cli implements the portfolio command: serve runs the HTTP server,
// build exports static per-language trees and check validates the language
// documents. Configuration comes from the environment and optional .env files.
package cli
