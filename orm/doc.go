/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of Model. A Model is
any Persistent type that can validate itself.

A bucket stores every model under "<bucket name>:<key>". Keys are chosen by
the extension, usually an address or a fixed name for singletons.
*/
package orm
