// Package platracerlog is a thin leveled wrapper over the standard
// library's log.Logger, used for the diagnostics spec.md calls out:
// lock-acquisition timeouts and structural invariant violations. Both
// are recovered locally by the caller; this package only records that
// they happened.
package platracerlog
