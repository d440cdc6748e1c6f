// Package scaffold creates new operator and custom node projects from the
// templates embedded in the binary. The only substitution performed is the
// ___name___ placeholder in the manifest; source stubs are written verbatim.
package scaffold
