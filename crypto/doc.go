/*
Package crypto holds the ed25519 keys and signatures used to authorize
transactions. A public key is turned into a signature condition owned by
the sigs extension, which is the identity the rest of the application works
with.
*/
package crypto
