// Package naming provides target identifier parsing and the filename
// classifier: decomposing observation filenames against the fixed SG1
// grammar and mapping the tail token onto a descriptor via an ordered
// rule table (first match wins).
//
// Split along these boundaries: target.go (TIC/TOI parsing), descriptor.go
// (descriptor enum, rule table, ordering, required sets), classifier.go
// (grammar regex and classification).
package naming
