// Package viz is the terminal front end of both puzzles.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: level menu, inclined plane screen and seesaw screen
//   - [Canvas]: Braille-based pixel canvas with a [Viewport] onto scene
//     coordinates
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	j/k    - Select level or field
//	h/l    - Nudge the selected ramp field
//	Enter  - Select level, or type a value
//	C      - Check equilibrium
//	R      - Reset the ramp
//	N      - New seesaw puzzle
//	T      - Cycle color themes
//	Esc    - Back to the menu
package viz
