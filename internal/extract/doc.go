// Package extract drives one end-of-day run:
//
//	business-day gate (unless bypassed) -> fetch tech_tools -> write EOD file
//
// A failed gate is a successful no-op. Connection lifetime belongs to the
// caller, which closes it on every exit path.
package extract
