// Package pickinglist contains the picking list aggregate and its entities.
//
// A PickingList is a sequenced unit of work directing one worker to retrieve
// a set of items from warehouse storage cells. The aggregate owns its
// PickingItem entities and enforces two coupled state machines: the list
// lifecycle (created → assigned → in_progress → completed, with cancellation
// only before picking starts) and the per-item resolution
// (pending → picked | shortage | skipped).
//
// Item resolutions are one-shot: once an item leaves pending it is immutable,
// which is the domain-level half of the exactly-once guarantee for stock
// consumption notifications. The storage layer supplies the other half with
// status-guarded atomic updates.
package pickinglist
