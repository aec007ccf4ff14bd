// Package kernel contains shared value objects used across domain aggregates.
// Identifiers in this system are formatted strings issued by upstream systems
// ("ORD-…", "TR-…", "USR-…", "ST-…"), so the ID value object wraps a validated
// string rather than a UUID; freshly placed orders get a generated suffix.
package kernel
