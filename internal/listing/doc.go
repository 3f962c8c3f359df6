// Package listing defines the listing domain: the opaque Payload stored
// verbatim, the append-only Store contract, and the Service that fronts the
// store and the simulated profile and messaging stubs.
//
// Listings are addressed by position. An index is the listing's creation
// order and stays valid for the life of the process because nothing is ever
// removed; it is not a stable identifier across restarts.
package listing
