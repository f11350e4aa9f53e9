// Package terminal provides the sinks command lines are sent to: Shell
// runs them in an embedded POSIX shell, Recorder only prints them.
package terminal
