// Package submission derives the per-filter metadata record uploaded to
// ExoFOP and the ordered file list that accompanies it. Entries are built
// once per filter from the canonical measurement table, the plate-solved
// images, and the run configuration, and are immutable afterwards.
package submission
