// Package config holds the process-wide toggles that the original source
// kept as globals (allow_pointer, PTWRITE, SUBGRAPH). Config is an
// explicit, immutable value threaded as a parameter through concretize,
// mustconcretize, optimize, and report — it is never read from a
// package-level variable, so two analyses with different settings can run
// side by side without interference.
//
// Complexity: Option application is O(len(opts)).
package config
