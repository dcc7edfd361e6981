// Package mcplogdlog mirrors structured log records to a local mcplogd
// daemon in development builds.
package mcplogdlog
