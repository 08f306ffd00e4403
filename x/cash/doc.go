/*
Package cash defines a simple implementation of sending coins
between wallets.

There is no logic in the coins (tokens), except that the balance
of any coin may not go below zero. Thus, this implementation is
referred to as cash. Simple and safe.

Other extensions move tokens through the Controller: the pool pulls
deposits and pays out rewards with MoveCoins, the mint extension creates
new tokens with IssueCoins.
*/
package cash
