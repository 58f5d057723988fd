// Package services contains stateless domain services that implement business
// logic spanning aggregates or requiring policy decisions that do not belong
// to a single entity.
//
// The central service is the VisibilityProjector, which reduces an order to
// the set of fields a given viewer may see. It is a pure function of the
// order, the viewer context and the order's status, so the disclosure policy
// can be tested in isolation from storage and transport.
package services
