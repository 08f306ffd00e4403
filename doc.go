/*
Package lpstake defines the interfaces shared by every part of the pool
node: storage, transactions, messages, handlers and decorators. It also holds
the helpers to work with the context, conditions, addresses and time.

The pool itself lives in x/pool. Supporting extensions are x/cash (token
balances), x/mint (token issuance), x/sigs (signature verification) and
x/utils (decorators).
*/
package lpstake
