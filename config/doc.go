// Package config loads a simulation description from HCL and the process
// environment, and turns it into a ready feature.Session, an initial
// configuration and a trajectory writer.
//
// A file looks like:
//
//	seed       = 42
//	max_degree = 7
//
//	box {
//	  x = 64
//	  y = 64
//	  z = 64
//	  periodic_z = false
//	}
//
//	bondset {
//	  classic = true
//	  strong  = false
//	}
//
//	feature "bondset" {}
//	feature "excluded_volume" {}
//	feature "box" { extent = 2 }
//	feature "contact" { epsilon = -0.4 }
//
//	initial {
//	  chains { count = 16  length = 32 }
//	  solvent { count = 500 }
//	}
//
//	run {
//	  mcs        = 10000
//	  save_every = 100
//	}
//
//	output {
//	  path = "run.bfm"
//	  mode = "new"
//	}
//
// Feature block parameters are decoded per feature; unknown features and
// unknown parameters are errors. Environment variables (LVBFM_SEED,
// LVBFM_OUTPUT, LVBFM_LOG_LEVEL, LVBFM_LOG_FORMAT) override the file.
package config
