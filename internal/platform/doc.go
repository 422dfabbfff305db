// Package platform isolates operating system differences for the install
// tree. Permission bits are applied through an afero.Fs so callers can run
// against an in-memory filesystem in tests.
package platform
