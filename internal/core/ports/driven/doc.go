// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
// Each interface is the narrowest contract one consumer needs:
//
//   - OrderRepository: persists placed orders
//   - InvoiceValidator, InvoiceRepository, InvoiceNotifier: the three
//     responsibilities behind invoice creation
//   - PaymentFeeStrategy: the fee for one payment method
//   - DiscountRule: one independent discount
//   - UserReader, UserWriter, UserLister, UserNotifier, UserReporting:
//     segregated user capabilities
//   - Bird, FlyingBird: movement capabilities, flying kept separate
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
