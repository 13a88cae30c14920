// Package testutil provides shared test helpers for the sqltext project.
package testutil
