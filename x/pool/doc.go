/*
Package pool implements a liquidity staking pool.

Participants deposit the liquidity token and are credited a share of the
reward token that the pool admin funds over an emission window. The pool
keeps a single ledger: the global totals in the Pool model and one
Participant record per depositor.

Every operation loads the ledger, reconciles it to the current block time,
performs its transition and persists the result. Reconciliation only gates
the reward rate to zero once the emission window has ended, the rate is not
weighted by the elapsed time:

	pending = deposit * rewardRate / totalDeposit - rewardDebt

Token movements go through a TokenGateway. NewCashGateway binds the pool to
the cash extension, holding all deposited and funded tokens on a single pool
account (see PoolAccount).
*/
package pool
