/*
Package mint creates new tokens.

Only the configured mint owner can issue coins. The owner is kept in the
gconf configuration of this package and can be replaced with an update
configuration message signed by the current owner. Every mint keeps the
configuration instance alive by extending its lifetime.
*/
package mint
