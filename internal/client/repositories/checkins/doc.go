// Package checkins persists journal records.
//
// All records of all users live in one JSON array under the "<prefix>data"
// key of a kv.Store, oldest first, in insertion order. Writes go through
// kv.Store.Update so that appending and seeding are a single
// read-modify-write on the backends that support it.
//
// A value that does not decode as an array is reported as ErrCorrupt and is
// never overwritten.
package checkins
