// Package auth defines the authentication contracts: password hashing, token
// issuance and verification, and the login service consumed by the REST layer.
// Hashing and signing configuration is injected at construction time; the
// package holds no process-global state.
package auth
