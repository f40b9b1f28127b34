// Package photometry reads AstroImageJ measurement tables and derives the
// values the submission pipeline needs from them: aperture-radius statistics,
// canonical-table ranking among duplicate tables, and observation timing.
//
// Table reading failures are never propagated raw: ranking treats an
// unreadable table as an explicit non-readable candidate, and only timing
// derivation on the chosen table returns an error, since a submission cannot
// proceed without it.
package photometry
