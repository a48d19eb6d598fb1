// Package wallfollower solves a maze with the right-hand rule.
//
// A walker keeps its right hand on a wall. Every iteration it:
//  1. moves right (90° clockwise from its heading) if that cell is Path,
//     adopting that heading;
//  2. else moves straight ahead if that cell is Path;
//  3. else turns left (90° counter-clockwise) without moving.
//
// After each move the new cell is appended to the trail and compared with
// the end. The initial heading is South.
//
// On a tree-shaped (carved) maze the rule always reaches the end. On open
// or disconnected mazes it can circle forever, so iterations are capped at
// DefaultCapFactor × rows × cols unless WithMaxIterations says otherwise.
// Exceeding the cap is a Failed outcome, never a hang.
//
// Two views of the result are kept:
//
//   - Trail: every cell the walker stood on, start first (for animation).
//   - Path:  the trail with loops erased, i.e. the simple route from start
//     to end. On a tree this equals the unique start→end path, and so
//     equals the frontier solver's answer.
//
// Complexity: O(cap) time, O(rows×cols) memory.
package wallfollower
