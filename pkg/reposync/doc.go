// Package reposync makes sure a collection's upstream repository is present
// locally before mappings are built. It shells out to git: a missing
// destination is shallow-cloned, an existing checkout is fast-forwarded.
// Syncs are synchronous and never overlap with link mutation.
package reposync
