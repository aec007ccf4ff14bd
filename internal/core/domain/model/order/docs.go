// Package order contains the Order aggregate and its fulfillment state
// machine. An order moves through a strictly linear pipeline:
//
//	PENDING -> TRAIN -> IN-STORE -> TRUCK -> DELIVERED
//
// Each step is guarded: dispatch onto a train trip requires matching
// destination and spare cargo capacity, truck assignment requires a driver and
// an assistant under the weekly hour ceiling, and delivery confirmation
// requires the requesting driver to own the assignment. The aggregate pairs
// the status with an explicit Carrier variant so that "who currently holds the
// order" is structurally consistent with the status instead of being inferred
// from whichever foreign key happens to be set.
//
// Orders are never deleted; delivered orders remain queryable for audit.
package order
