// Package order provides the Order aggregate and its status state machine.
//
// Lifecycle:
//
//	NEW -> CONFIRMED -> PREPARING -> READY -> TAKED -> DELIVERED
//	  \________\___________\__________\________\______-> CANCELLED
//
// Key business rules:
//   - An order is created in NEW with a total snapshotted from its cart; the total never changes
//   - DELIVERED is terminal: every later status change fails with an invalid state transition
//   - Other statuses (including CANCELLED) may be set from any non-terminal status
//   - A courier is bound only while the order is READY and unassigned; binding moves it to TAKED
//   - Leaving TAKED releases the bound courier's active-order slot
package order
