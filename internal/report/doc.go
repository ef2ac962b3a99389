// Package report renders a health run for humans or machines.
//
// The text format prints each check with a colored status marker and its
// detail lines, followed by a summary. The JSON format encodes the whole
// [health.Report]. The waybar payload itself is produced by the root
// command, not by this package.
package report
