// Package x11 provides X11 platform support by driving the wmctrl and xprop
// command-line tools and reading process information from /proc.
// Every external command is built as an argument vector; nothing is passed
// through a shell.
package x11
