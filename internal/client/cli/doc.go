// Package cli is the interactive front end of the todokeeper client: a small
// read-eval-print loop over the gRPC client.
package cli
