// Package notification provides the Notification aggregate handled by the dispatcher.
//
// Lifecycle:
//
//	PENDING   -> SENT | FAILED   (immediate delivery)
//	SCHEDULED -> SENT | FAILED   (deferred delivery, picked up once sendAt has passed)
//
// A notification whose sendAt is strictly in the future starts SCHEDULED; every
// other notification starts PENDING and is delivered right away.
package notification
