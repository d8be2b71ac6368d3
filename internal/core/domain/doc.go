// Package domain defines the core business entities for solidkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the plain records every example operates on:
//
//   - Order: an order with an amount and the flags discount rules read
//   - Invoice: a total and the customer's contact address
//   - Payment: a payment method tag and an amount
//   - Message: a text body
//   - User: an identifier and a contact address
//   - Example: catalog metadata for one good or bad example
//
// None of these types enforce invariants at construction. Validation, where
// an example needs it, happens in a collaborator.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal for money
//   - Cannot Import: Any internal/ package
package domain
