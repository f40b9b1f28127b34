// Package pipeline orchestrates one submission run: discover the observation
// directory, classify filenames, resolve the single (date, observatory) set,
// pick the canonical measurement table per filter, check completeness, build
// the per-filter submission entries, and push them to ExoFOP. Stages run
// strictly in order; every stage either completes or ends the run.
package pipeline
