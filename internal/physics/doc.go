// Package physics provides the two statics puzzle engines.
//
// Each engine owns its game state and judges equilibrium against the
// tolerance in [equilibrium.Epsilon]:
//
//   - [InclinedPlane]: block on a ramp tied over a pulley to a hanging block,
//     with a bounded number of attempts
//   - [Seesaw]: lever with a generated person 1 and an unknown counterweight
//     for person 2, unlimited attempts
//   - [Generator]: rejection sampler producing seesaw puzzles whose answer
//     has at most four decimals
//
// Engines never fail through errors during play. Every evaluation returns a
// result value whose Kind is an [equilibrium.Outcome].
//
// # Randomness
//
// Engines draw from an injected [equilibrium.Rand] so games can be replayed
// from a seed:
//
//	rng := rand.New(rand.NewSource(42))
//	ramp := physics.NewInclinedPlane(rng)
//	res := ramp.Evaluate(5, 3.5, 0.2)
package physics
