// Package order contains the order aggregate and its lifecycle state
// machine, the only logic-bearing component of the system. Orders are
// created in Pending status with a creation-time total price and move
// through the lifecycle exclusively via ChangeStatus and Cancel; items
// are immutable after creation and orders are never deleted.
package order
