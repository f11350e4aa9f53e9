// Package workspace implements the host side of folder selection and
// compose file discovery on the local file system.
package workspace
