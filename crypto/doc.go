// Package crypto implements the key derivation and authenticated-encryption
// pipeline that protects a database's payload: password/keyfile key
// material, the costly key-transform loop, AES-256-CBC with PKCS#7
// padding, and SHA-256 content integrity verification.
package crypto
