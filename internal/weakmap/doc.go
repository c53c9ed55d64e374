// Package weakmap provides a sharded, concurrent hash-bucket table whose
// slots hold weak pointers.
//
// The table never keeps a value alive. Liveness is owned by whoever holds
// strong pointers to the values it returned; once those are gone the garbage
// collector reclaims the value, the slot reads as empty, and a cleanup hook
// prunes it from its bucket.
//
// The table is split into 64 shards selected by hash. Each shard has its own
// RWMutex and is padded to a cache line so neighbouring shards do not share
// one. Lookups take the read lock; a miss retakes the write lock and rechecks
// before inserting.
package weakmap
