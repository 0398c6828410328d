// Package analysis provides offline tools for studying both puzzles.
//
//   - [EnumerateSeesaw]: exhaustive pass over the seesaw generator domain
//   - [BalancedWindow]: range of hanging masses that balance a ramp
//   - [InclineSweep]: balance margin over a range of hanging masses
//   - [SeesawSweep]: board tilt over a range of candidate weights
//
// # Generator Termination
//
// The seesaw generator rejects draws until the answer is clean. Enumerating
// the domain shows how many draws it needs on average:
//
//	stats := analysis.EnumerateSeesaw()
//	fmt.Printf("%.1f expected draws\n", stats.ExpectedDraws)
//
// A domain with no clean puzzle would make the generator run to its cap.
package analysis
