// Package kernel holds the value objects shared by every printflow aggregate:
// UUID identifiers and millimeter Dimensions with their normalized area.
package kernel
