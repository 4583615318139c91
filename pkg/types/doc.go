// Package types defines the hutch domain model: locations with numbered
// bins, the items stored in them, size codes with load weights, and the
// error taxonomy shared by the CLI and HTTP layers.
package types
