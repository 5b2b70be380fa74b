// Package lvbfm is a lattice Monte-Carlo engine for the bond-fluctuation
// model of polymers: monomers are 2x2x2 cubes on a simple cubic lattice,
// bonds are drawn from a closed alphabet of integer vectors, and every
// move is validated by an ordered composition of independent rules.
//
// 🚀 What is in the box?
//
//	core/      vectors, the simulation box, the error taxonomy and the
//	           bonded graph of monomers (Molecules)
//	lattice/   dense periodic occupancy lattice with fold/index addressing
//	bondvec/   bond-vector alphabet with one-byte identifiers
//	feature/   move types, rule features (bond alphabet, excluded volume,
//	           walls, contact energy, external force) and the Session that
//	           runs Check -> Metropolis -> Apply trials
//	bfm/       line-oriented trajectory codec with chain-delta and solvent
//	           compression, extensible through a command registry
//	builder/   initial configurations: linear chains, stars, solvent
//	config/    HCL simulation files with environment overrides
//	cmd/lvbfm  command line runner
//
// Quick example:
//
//	sess, _ := feature.NewSession(core.NewBox(64, 64, 64),
//		feature.WithFeatures(feature.NewBondsetFeature(), feature.NewExcludedVolumeFeature()),
//		feature.WithSeed(1))
//	_ = builder.Build(sess, nil, builder.LinearChains(16, 32))
//	_ = sess.Sweep(1000)
//
//	go get github.com/katalvlaran/lvbfm
package lvbfm
