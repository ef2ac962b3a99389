// Package modules implements the concrete health checks: systemd units,
// the journal, btrfs integrity counters, disk capacity and SMART.
//
// Each check is a small decision procedure over the loosely structured
// output of an external tool. Checks hold their ignore rules by value and
// never mutate state after construction. Every failure mode of the
// underlying tool degrades to a WARN or CRITICAL result.
package modules
