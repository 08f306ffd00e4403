/*
Package x contains the building blocks shared by all extensions.

Extensions implement common functionality (Handler, Decorator,
Initializer) and are combined together to construct an application.
Each sub-package is a single extension: cash moves tokens between
wallets, mint issues new tokens, sigs authenticates transactions and
pool runs the liquidity staking ledger.

Authentication is never hard coded into an extension. Handlers accept an
Authenticator and ask it which conditions the current transaction
fulfills.
*/
package x
