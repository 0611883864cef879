// Package digest produces short fingerprints of rendered grids.
//
// Fingerprints let a user or a log reader confirm that two renders of the same
// schedule are byte-identical without diffing the full text.
package digest
