// Package types defines the Item entity, the Store interface, configuration,
// and standard errors for the stockroom inventory system.
package types
