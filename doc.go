// Package ember is a small 2D simulation toolkit for [Ebitengine]: Verlet and
// Euler integration, iterative stick-constraint relaxation, voxel-grid and
// circular-obstacle collision, timed particle pools, and a handful of render
// helpers (thick-line ribbons, screen shake, Kage post-processing filters).
//
// Ember is not a general physics engine. It implements exactly the constraint
// and collision set its demos need (axis-aligned box overlap, circle radius
// exclusion, stick-length constraints) and keeps its collision queries brute
// force on purpose: at demo scale the plain scans are fast and predictable.
//
// # Simulation loop
//
// Everything is single-threaded and frame-synchronous. A typical tick:
//
//	ember.IntegrateVerlet(rope.Points, gravity, damping, dt)
//	solver.Solve(rope.Points, rope.Sticks, obstacles)
//	pool.Tick(dt)
//
// All mutable state is owned by whoever calls the tick; nothing in the
// package locks or spawns goroutines.
//
// # Determinism
//
// Spawning code draws randomness through the [Source] interface. Inject
// [SeededSource] in tests and the whole simulation becomes reproducible.
//
// # Demos
//
// demos/shooter, demos/fireworks, and demos/rope are complete Ebitengine
// programs built on this package.
//
// [Ebitengine]: https://ebitengine.org
package ember
