// Package tetra implements the playfield model and game sequencing of a
// falling-block puzzle game.
//
// The package owns the rules only: shape geometry and rotation, the board
// occupancy grid and its collision queries, full-line detection and the
// cascading clear, and the Session state machine that sequences spawn, fall,
// lock, line clear, game over and the closing spiral. Everything visual or
// audible is pushed out through the Renderer and AudioCue interfaces, and
// assets are awaited through an AssetLoader, so a Session can be driven
// headless and deterministically by calling Tick with explicit deltas.
//
// Coordinates are integer cartesian: x grows to the right, y grows upward
// and row 0 is the bottom row of a board.
package tetra
