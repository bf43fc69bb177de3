// Package service wraps the order book behind a single
// mutual-exclusion boundary. AddOrder and CancelOrder touch a side
// tree and the id index together, so all four book operations are
// serialized here and readers never observe a half-applied mutation.
//
// It also assigns order ids for callers that do not supply one, and
// emits structured operation logs, decoupled from any presentation.
package service
