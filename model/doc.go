// Package model defines the in-memory entities of a database: Group and
// Entry, their timestamp-on-mutation setters, and the virtual root that
// every top-level group is parented to.
//
// Group and Entry are plain structs addressed by pointer; Go's garbage
// collector reclaims the parent/child/entry cycles they form, so there is
// no need for arena indices or slot maps to avoid cyclic ownership.
package model
