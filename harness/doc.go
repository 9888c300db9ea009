// Package harness checks every kernel of the module against fixed fixtures
// and against seeded random instances.
//
// A run compares each kernel's optimal value with the fixture answer, or with
// an exhaustive oracle when the fixture has none, and then validates the
// witness independently: pieces sum to the rod, chosen items fit the
// knapsack, subsequences are really subsequences, seams are connected,
// shortest paths use existing arcs and cost what they claim.
//
// Configuration comes from a TOML file (LoadConfig) and fixtures from a YAML
// file (LoadSuite); BuiltinSuite carries the classic instances.
//
//	cfg, err := harness.LoadConfig("harness.toml")
//	if err != nil {
//	    return err
//	}
//	rep, err := harness.Run(cfg, nil, logger)
//	if err != nil {
//	    return err
//	}
//	if rep.Failed() > 0 {
//	    // inspect rep.Results
//	}
//
// The oracles are exponential; generated instances are therefore capped at
// twelve elements.
package harness
