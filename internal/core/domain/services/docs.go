// Package services holds domain logic that spans aggregates.
//
// The package includes:
//   - PricingEngine: deterministic price computation from catalog attributes
//   - BatchEligibility: the all-ACTIVE rule for building production batches
package services
