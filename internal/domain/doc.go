// Package domain contains shared domain types used across sub-packages.
// The form normalizer lives in domain/form and the per-entity field tables in
// domain/resource. This root package holds sentinel errors, the validation
// error type, and the generic Record returned by the downstream API.
package domain
