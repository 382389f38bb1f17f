// Package services provides domain services whose rules span more than one aggregate.
//
// The package includes:
//   - OrderDispatcher: binds a READY order to a courier after the eligibility checks
//   - EtaEstimator: computes the delivery ETA of a cart
//   - Checkout: validates a cart against the menu and prices it
//   - NoticeFor: the fixed order-status to notification table
//   - ReviewModerator: the stop-word and copy-paste spam rules for reviews
package services
