// Package compose resolves which Docker Compose files an operation applies
// to and turns lifecycle operations (up, down, start, stop, restart) into
// docker-compose command lines sent to a terminal.
//
// The package owns no I/O. Folder selection, file discovery, interactive
// choice, settings and the terminal are narrow interfaces (see ports.go)
// implemented by the host packages and by test fakes in composetest.
//
// Files are resolved with a fixed precedence: an explicit file wins over the
// files configured in settings, which win over interactive discovery.
package compose
