// Package persistence provides the volatile in-memory stores backing both
// bounded contexts.
//
// Each store is a mutex-guarded map indexed by aggregate id and by the
// aggregate's natural key. There are no transactions and no optimistic
// concurrency control: updates to the same key are last-write-wins, and
// nothing survives a process restart. Both properties are deliberate and
// covered by tests rather than hidden.
package persistence
