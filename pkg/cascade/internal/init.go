// Package internal contains the infrastructure shared by the cascade menu
// component: the process-wide structured logger and prometheus counters.
// Types and functions in this package are not part of the public API.
package internal
