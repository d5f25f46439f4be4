// =============================================================================
// internal/grid/dispatcher.go - Concurrent (name x server) query dispatch
// =============================================================================
package grid

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultWorkers bounds the number of queries in flight at once.
const DefaultWorkers = 30

// Record is one answer-section entry as reported by the resolver
// collaborator. Owner is the name the record belongs to in the response,
// which can differ from the queried name when the server chased a CNAME.
type Record struct {
	Owner string
	Kind  string
	Value string
}

// Resolver is the external collaborator that performs a single DNS query
// against a single server. Network I/O, timeout, and retry all live behind
// this interface; the dispatcher only sees the final post-retry result.
// A nil error with an empty slice means the server answered with no records.
type Resolver interface {
	Resolve(ctx context.Context, name, server, recordType string) ([]Record, error)
}

// Task is one (name, server) query in the dispatch matrix.
type Task struct {
	Name       string
	Server     string
	RecordType string
}

// Outcome is the raw per-task result collected by the dispatcher.
// Records is nil when the query produced no response at all; Completed is
// zero unless the response carried at least one matching record.
type Outcome struct {
	Task      Task
	Records   []string
	Started   time.Time
	Completed time.Time
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Workers int          // max in-flight queries, DefaultWorkers when <= 0
	QPS     int          // query rate limit, unlimited when <= 0
	Logger  *slog.Logger // nil for the default logger
}

// Dispatcher fans the full names x servers task set out over a bounded
// worker pool and folds the outcomes into a Matrix.
type Dispatcher struct {
	resolver Resolver
	workers  int
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher backed by the given resolver.
func NewDispatcher(resolver Resolver, opts DispatcherOptions) *Dispatcher {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var limiter *rate.Limiter
	if opts.QPS > 0 {
		burst := opts.QPS / 10
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.QPS), burst)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		resolver: resolver,
		workers:  workers,
		limiter:  limiter,
		logger:   logger,
	}
}

// Run queries every name against every server and blocks until all tasks
// have completed or finally failed. Per-task failures are not errors: they
// surface as undefined cells in the returned matrix. Run only fails on
// empty inputs.
func (d *Dispatcher) Run(ctx context.Context, names, servers []string, recordType string) (*Matrix, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no names to query")
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("no servers to query")
	}

	tasks := buildTasks(names, servers, recordType)

	// Write-once arena: each task owns exactly one slot, so workers never
	// contend and the fold below runs single-threaded after the barrier.
	outcomes := make([]Outcome, len(tasks))

	taskChan := make(chan int, len(tasks))
	for i := range tasks {
		taskChan <- i
	}
	close(taskChan)

	workers := d.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskChan {
				outcomes[i] = d.runTask(ctx, tasks[i])
			}
		}()
	}

	// Join barrier: rows and annotations are only built once every task
	// has reported, so output order never depends on completion order.
	wg.Wait()

	matrix := NewMatrix(names, servers)
	for _, outcome := range outcomes {
		d.fold(matrix, outcome)
	}
	return matrix, nil
}

// runTask hands one task to the resolver and normalizes the outcome.
func (d *Dispatcher) runTask(ctx context.Context, task Task) Outcome {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			d.logger.Debug("rate limiter interrupted", "name", task.Name, "server", task.Server, "error", err)
		}
	}

	outcome := Outcome{Task: task, Started: time.Now()}

	records, err := d.resolver.Resolve(ctx, task.Name, task.Server, task.RecordType)
	if err != nil {
		d.logger.Debug("query failed", "name", task.Name, "server", task.Server, "error", err)
		return outcome
	}

	// A response arrived. Keep only the requested record kind, in the
	// order the resolver returned it.
	outcome.Records = make([]string, 0, len(records))
	for _, record := range records {
		if record.Kind == task.RecordType {
			outcome.Records = append(outcome.Records, record.Value)
			if outcome.Completed.IsZero() {
				outcome.Completed = time.Now()
			}
		}
	}
	return outcome
}

// fold writes one outcome into the matrix, keyed by the submitted task
// identity. Responses whose owner names were CNAME-chased still land in
// the row of the name that was asked for.
func (d *Dispatcher) fold(matrix *Matrix, outcome Outcome) {
	if outcome.Records == nil {
		return
	}
	matrix.SetCell(outcome.Task.Name, outcome.Task.Server, JoinValues(outcome.Records))
	if !outcome.Completed.IsZero() {
		elapsed := outcome.Completed.Sub(outcome.Started)
		matrix.SetTiming(outcome.Task.Name, outcome.Task.Server, float64(elapsed)/float64(time.Millisecond))
	}
}

// buildTasks expands the names x servers cross product, name-major.
func buildTasks(names, servers []string, recordType string) []Task {
	tasks := make([]Task, 0, len(names)*len(servers))
	for _, name := range names {
		for _, server := range servers {
			tasks = append(tasks, Task{Name: name, Server: server, RecordType: recordType})
		}
	}
	return tasks
}
