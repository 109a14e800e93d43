package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/trace"
)

// Engine computes single-source shortest distances over a core.Graph and
// records every visit and successful relaxation as a trace.
//
// The graph is stored as given; it is neither copied nor validated at
// construction and must not be modified while Run executes.
// An Engine is not safe for concurrent use; create one per goroutine.
type Engine struct {
	g       core.Graph
	options Options
	log     hclog.Logger
	history *trace.Recorder
}

// NewEngine returns an Engine over g configured by opts.
func NewEngine(g core.Graph, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		g:       g,
		options: cfg,
		log:     cfg.Logger.Named("dijkstra"),
		history: trace.NewRecorder(),
	}
}

// Run executes Dijkstra's algorithm from start.
//
// Returns:
//
//   - dist:  distance for every graph node; core.Infinity if unreachable.
//   - steps: this run's events, or the engine's whole history when the engine
//     was built with WithCumulativeTrace.
//   - err:   ErrNilGraph, ErrUnknownStartNode, ErrInvalidGraph (strict mode),
//     or an error wrapping core.ErrDanglingEdge / core.ErrNegativeWeight
//     met during relaxation.
//
// On error nothing is returned and the engine history is left untouched.
//
// Complexity:
//
//   - Time:  O((V + E) log E) plus O(deg·log deg) neighbor sorting.
//   - Space: O(V + E) working state, O(V) per recorded event snapshot.
func (e *Engine) Run(start string) (core.Distances, trace.Trace, error) {
	dist, steps, stats, err := e.run(start)
	e.options.Metrics.observe(stats, err)
	if err != nil {
		e.log.Debug("run failed", "start", start, "error", err)
		return nil, nil, err
	}
	e.log.Debug("run finished",
		"start", start,
		"visits", stats.visits,
		"relaxations", stats.relaxations,
		"stale_pops", stats.stalePops)

	if !e.options.Cumulative {
		e.history.Reset()
	}
	e.history.Append(steps)
	if e.options.Cumulative {
		return dist, e.history.Events(), nil
	}

	return dist, steps, nil
}

// History returns a copy of the events the engine retains: the latest run's
// trace by default, every successful run's trace in cumulative mode.
func (e *Engine) History() trace.Trace {
	return e.history.Events()
}

// Reset clears the retained history.
func (e *Engine) Reset() {
	e.history.Reset()
}

func (e *Engine) run(start string) (core.Distances, trace.Trace, runStats, error) {
	// 1) Reject bad inputs before touching any working state.
	if e.g == nil {
		return nil, nil, runStats{}, ErrNilGraph
	}
	if !e.g.HasNode(start) {
		return nil, nil, runStats{}, fmt.Errorf("%w: %q", ErrUnknownStartNode, start)
	}
	if e.options.Strict {
		if err := e.g.Validate(); err != nil {
			return nil, nil, runStats{}, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		}
	}

	// 2) Set up working state and run the main loop.
	r := &runner{
		g:       e.g,
		log:     e.log,
		dist:    make(core.Distances, len(e.g)),
		visited: make(map[string]bool, len(e.g)),
		pq:      make(nodePQ, 0, len(e.g)),
		rec:     trace.NewRecorder(),
	}
	e.log.Debug("run started", "start", start, "nodes", len(e.g))
	r.init(start)
	if err := r.process(); err != nil {
		return nil, nil, r.stats, err
	}

	return r.dist, r.rec.Events(), r.stats, nil
}

// Run is a convenience wrapper that runs a fresh Engine once.
func Run(g core.Graph, start string, opts ...Option) (core.Distances, trace.Trace, error) {
	return NewEngine(g, opts...).Run(start)
}

// runner holds the mutable state for a single run.
type runner struct {
	g       core.Graph
	log     hclog.Logger
	dist    core.Distances  // node → best-known distance
	visited map[string]bool // finalized nodes
	order   []string        // finalized nodes in visit order
	pq      nodePQ          // frontier with lazy deletion
	rec     *trace.Recorder
	stats   runStats
}

// init sets every distance to Infinity except start, and seeds the frontier with (0, start).
func (r *runner) init(start string) {
	// 1) Every node begins unseen: dist = +∞ (MaxInt64).
	for id := range r.g {
		r.dist[id] = core.Infinity
	}

	// 2) The start node skips the unseen state and enters the frontier at 0.
	r.dist[start] = 0

	// 3) Seed the frontier with the single pair (0, start).
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops the closest frontier entry until the frontier is empty.
// Stale entries (already visited nodes) are dropped without an event.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, id) pair. Equal distances pop in ID order,
		//    which is what makes the recorded trace reproducible.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) A visited node was already finalized by a cheaper entry; this one is
		//    a leftover of lazy decrease-key. Drop it without emitting anything.
		if r.visited[u] {
			r.stats.stalePops++
			r.log.Trace("skip stale entry", "node", u, "dist", item.dist)
			continue
		}

		// 3) Finalize u. r.dist[u] can no longer change, so the visit event
		//    snapshots the table and the visited set as they stand right now.
		r.visited[u] = true
		r.order = append(r.order, u)
		r.stats.visits++
		r.rec.Visit(u, r.dist, r.order)
		r.log.Trace("visit node", "node", u, "dist", r.dist[u])

		// 4) Relax u's outgoing edges. A contract violation aborts the whole run.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every outgoing edge of the finalized node u, in neighbor ID order.
// Only strict improvements update the table, push a frontier entry and emit an event.
func (r *runner) relax(u string) error {
	// u is finalized, so its distance is read once for all its edges.
	du := r.dist[u]

	// Neighbors are sorted; ranging over the adjacency map directly would
	// reorder relax events from run to run.
	for _, v := range r.g.Neighbors(u) {
		w := r.g[u][v]

		// 1) Check the edge before the visited skip, so a negative or dangling
		//    edge is reported even when it points back at a finalized node.
		if err := r.g.CheckEdge(u, v, w); err != nil {
			return err
		}

		// 2) Finalized neighbors can never improve; skip them.
		if r.visited[v] {
			continue
		}

		// 3) Candidate distance through u. Add saturates at Infinity, so an
		//    overflowing sum never looks like an improvement.
		newDist := core.Add(du, w)

		// 4) Only a strictly shorter path relaxes. Using ">=" keeps ties silent:
		//    no update, no frontier entry and no trace event.
		if newDist >= r.dist[v] {
			continue
		}

		// 5) Record the improvement. The old frontier entry for v stays in the
		//    heap and is discarded later as stale.
		r.dist[v] = newDist
		r.push(v, newDist)
		r.stats.relaxations++

		// 6) Snapshot after the update, so the event shows the new value of v.
		r.rec.Relax(u, v, newDist, r.dist)
		r.log.Trace("relax edge", "from", u, "to", v, "dist", newDist)
	}

	return nil
}

// push adds a frontier entry and tracks the peak frontier size for metrics.
func (r *runner) push(id string, dist int64) {
	heap.Push(&r.pq, nodeItem{id: id, dist: dist})
	if n := r.pq.Len(); n > r.stats.peak {
		r.stats.peak = n
	}
}

// nodeItem is a frontier entry. Several entries may exist for one node;
// all but the smallest become stale once that node is visited.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap ordered by (dist, id). The id tie-break keeps the pop
// order, and therefore the trace, reproducible.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
