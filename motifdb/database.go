package motifdb

import (
	"log"

	"github.com/motifquery/motifgraph/join"
	"github.com/motifquery/motifgraph/plan"
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// Database is the top-level entry point: a GraphStore, its TypeRegistry,
// and the planning/execution machinery needed to turn a StructuredQuery
// into tagged tuples on a caller-supplied sink.Sink.
//
// A Database is safe for concurrent mutation (GraphStore.mu guards it) but
// not for concurrent Match/Query calls racing a Commit — callers should
// serialize mutation against query execution themselves.
type Database struct {
	store *store.GraphStore
	reg   *registry.TypeRegistry
	log   *log.Logger
	jopts []join.Option
}

// New returns a Database backed by a fresh GraphStore and, unless
// WithRegistry overrides it, a fresh TypeRegistry.
func New(opts ...Option) *Database {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.reg == nil {
		cfg.reg = registry.NewTypeRegistry()
	}

	return &Database{
		store: store.NewGraphStore(cfg.storeOpts...),
		reg:   cfg.reg,
		log:   cfg.logger,
		jopts: cfg.joinOpts,
	}
}

// Registry returns the TypeRegistry backing this Database's edge types and
// property keys.
func (db *Database) Registry() *registry.TypeRegistry {
	return db.reg
}

// Store returns the underlying GraphStore, for callers that need direct
// adjacency access (e.g. a server layer exposing read-only introspection).
func (db *Database) Store() *store.GraphStore {
	return db.store
}

// InternEdgeType interns name in the edge/vertex-type namespace.
func (db *Database) InternEdgeType(name string) (registry.ID, error) {
	return db.reg.InternType(name)
}

// InternPropertyKey interns name in the property-key namespace.
func (db *Database) InternPropertyKey(name string) (registry.ID, error) {
	return db.reg.InternKey(name)
}

// AddEdge stages an edge addition; see GraphStore.AddEdge.
func (db *Database) AddEdge(src, dst store.VertexID, typ registry.ID) (store.EdgeID, error) {
	id, err := db.store.AddEdge(src, dst, typ)
	if db.log != nil {
		db.log.Printf("motifdb: AddEdge(%d,%d,%d) = %d, %v", src, dst, typ, id, err)
	}

	return id, err
}

// DeleteEdge stages an edge deletion; see GraphStore.DeleteEdge.
func (db *Database) DeleteEdge(src, dst store.VertexID, typ registry.ID) error {
	err := db.store.DeleteEdge(src, dst, typ)
	if db.log != nil {
		db.log.Printf("motifdb: DeleteEdge(%d,%d,%d) = %v", src, dst, typ, err)
	}

	return err
}

// EnsureVertex records id as mentioned; see GraphStore.EnsureVertex.
func (db *Database) EnsureVertex(id store.VertexID) error {
	return db.store.EnsureVertex(id)
}

// SetVertexType assigns id's type; see GraphStore.SetVertexType.
func (db *Database) SetVertexType(id store.VertexID, typ registry.ID) error {
	return db.store.SetVertexType(id, typ)
}

// SetVertexProperty attaches a property to vertex id; see
// GraphStore.SetVertexProperty.
func (db *Database) SetVertexProperty(id store.VertexID, key registry.ID, value propval.PropertyValue) error {
	return db.store.SetVertexProperty(id, key, value)
}

// SetEdgeProperty attaches a property to edge id; see
// GraphStore.SetEdgeProperty.
func (db *Database) SetEdgeProperty(id store.EdgeID, key registry.ID, value propval.PropertyValue) error {
	return db.store.SetEdgeProperty(id, key, value)
}

// Commit folds every staged addition and deletion into PERMANENT; see
// GraphStore.Commit.
func (db *Database) Commit() error {
	err := db.store.Commit()
	if db.log != nil {
		db.log.Printf("motifdb: Commit() = %v", err)
	}

	return err
}

// Match plans q as a one-time MATCH and executes it against the current
// graph state, writing MATCHED tuples to sk.
func (db *Database) Match(q *querygraph.StructuredQuery, sk sink.Sink) error {
	p, err := db.planOneTime(q)
	if err != nil {
		return err
	}

	return join.NewExecutor(db.store, db.jopts...).Execute(p, sk)
}

// ContinuousMatch decomposes q into delta plans and executes each against
// the graph's current DIFF_PLUS/DIFF_MINUS staging, writing EMERGED and
// DELETED tuples to sk. Callers typically run this before Commit, against
// a batch of staged AddEdge/DeleteEdge calls.
func (db *Database) ContinuousMatch(q *querygraph.StructuredQuery, sk sink.Sink) error {
	g, resolved, err := db.buildAndValidate(q)
	if err != nil {
		return err
	}
	deltas, err := plan.ContinuousMatch(g, resolved)
	if err != nil {
		return err
	}

	ex := join.NewExecutor(db.store, db.jopts...)
	for i := range deltas {
		if err := ex.ExecuteDelta(&deltas[i], sk); err != nil {
			return err
		}
		if db.log != nil {
			db.log.Printf("motifdb: ContinuousMatch delta[%d] (edge %d) done", i, deltas[i].DiffRelationEdgeIndex)
		}
	}

	return nil
}

func (db *Database) planOneTime(q *querygraph.StructuredQuery) (*plan.Plan, error) {
	g, resolved, err := db.buildAndValidate(q)
	if err != nil {
		return nil, err
	}

	return plan.OneTimeMatch(g, resolved)
}

func (db *Database) buildAndValidate(q *querygraph.StructuredQuery) (*querygraph.QueryGraph, []querygraph.ResolvedPatternEdge, error) {
	g, err := querygraph.Build(q)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := querygraph.Validate(g, db.reg)
	if err != nil {
		return nil, nil, err
	}

	return g, resolved, nil
}
