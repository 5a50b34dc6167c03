// Package internal contains the infrastructure shared by the shelf containers:
// logging, held-direction repeat timing and viewport padding.
// Types and functions in this package are not part of the public API.
package internal
