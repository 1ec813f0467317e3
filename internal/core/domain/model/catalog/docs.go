// Package catalog models what can be ordered: products with their page sizes,
// paper configs and finishing cost items, the sheets used for packing, and the
// order form each product implies.
//
// The catalog is read-only to the order and batch workflows. Options carry an
// Applicability tag and may only be attached to products of a category the tag
// covers. A finishing type offered with exactly one value is selected implicitly
// when an order leaves it blank (see Product.ResolveFinishing and FormSchema).
package catalog
