// Package schedule implements the task scheduler a Canvas dispatches
// asynchronous rasterization through: one work-stealing deque per
// worker, round-robin submission, and a bounded number of steal
// attempts before a worker blocks on its own deque.
//
// Grounded on the teacher's internal/parallel.WorkerPool (per-worker
// queues, steal-from-sibling, drain-on-close), adapted from its
// push/ExecuteAll model to the pull-and-block request/done contract:
// Pool.Request(task) calls task.Prepare(), pushes task.Run onto a
// deque, and returns a handle whose Wait blocks until that run
// completes. A zero-worker Pool runs every task inline and
// synchronously, a fallback the teacher's pool does not need since it
// always spawns at least GOMAXPROCS workers.
package schedule
