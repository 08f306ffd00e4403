/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration of an extension.

Each extension owns a single configuration object, stored under a key
derived from the extension name. A configuration is loaded from the genesis
file with InitConfig and can later be changed by its owner with a message
processed by the ConfigHandler.
*/
package gconf
