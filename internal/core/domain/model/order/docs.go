// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order moves from Pending through Accepted and InTransit to Delivered,
// with Cancelled reachable from the two earliest states. The aggregate enforces
// who may trigger each transition: any rider may claim a Pending order (the
// storage layer arbitrates concurrent claims), while only the assigned rider
// may start or complete the delivery.
//
// The aggregate carries the customer's delivery address and phone in full;
// reducing those fields per viewer is the job of the visibility projection in
// the domain services package, which produces the View type defined here.
package order
