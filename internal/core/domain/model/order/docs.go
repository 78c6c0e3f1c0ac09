// Package order contains the order aggregate and its value objects: the
// customer contact details, the cart line items, the status lifecycle, and
// the human-readable order number.
//
// An order is created exactly once with a pre-allocated order number and
// status Pending, and afterwards mutates only through status changes. The
// submitted total is verified against the recomputed cart total at
// construction; a mismatch rejects the order rather than correcting it.
package order
