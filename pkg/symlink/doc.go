// Package symlink creates and removes the links of the managed layout.
//
// Every mutation is preceded by a path policy check and a fresh existence
// check; nothing is overwritten. Creation of an occupied destination is a
// skip, removal of anything that is not a symlink is a skip. Batches run
// sequentially in input order and keep going after per-item failures,
// except that a path escape aborts the batch and a single-item batch
// returns its error.
//
// Installed state is never stored. It is derived by scanning the managed
// directories with the same matching rules the removal uses.
package symlink
