// Package builder populates a feature.Session with initial configurations:
// linear chains, star polymers and solvent particles.
//
// Constructors are composed by Build and run in order against one session.
// Every particle and every bond goes through the session's Check/Apply
// cycle, so the composed features (box walls, excluded volume, bond
// alphabet, maximum degree) validate the configuration while it is grown.
// Energetic weights are ignored during construction; only vetoes count.
//
// Growth is a random walk over the session's bond-vector alphabet: the
// first particle of a molecule lands at a uniform position in the box and
// each following particle is placed at its predecessor plus a random bond
// vector. A placement that is vetoed is retried up to WithMaxAttempts
// times before the constructor fails with ErrConstructFailed.
//
// Options:
//
//   - WithSeed / WithRand: the random source. Without one the session's
//     own source is used, so a seeded session gives reproducible builds.
//   - WithMaxAttempts: retries per placement (default DefaultMaxAttempts).
//
// Build does not roll back on failure; the particles placed before the
// failing constructor stay in the session.
package builder
