package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"rbset/infra/sequence"
	"rbset/rbtree"
)

const (
	EventVersion = 1
	EventInsert  = "insert"
)

// Publisher delivers encoded events. infra/kafka.Producer satisfies it.
type Publisher interface {
	Send(ctx context.Context, key, value []byte) error
}

// Event is emitted once per accepted insertion.
type Event struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	Seq     uint64 `json:"seq"`
	Source  string `json:"source"`
	Element string `json:"element"`
}

/*
SetService guards one tree with a single RWMutex.

Insert holds the write lock for the whole descent and rebalance; the
queries share the read lock.
*/
type SetService[E any] struct {
	mu     sync.RWMutex
	tree   *rbtree.Tree[E]
	seq    *sequence.Sequencer
	pub    Publisher
	source string
	log    *logrus.Entry
}

// NewSetService wires the tree, the revision sequencer and an optional
// publisher. pub may be nil.
func NewSetService[E any](
	tree *rbtree.Tree[E],
	seq *sequence.Sequencer,
	pub Publisher,
) *SetService[E] {
	source := uuid.NewV4().String()
	return &SetService[E]{
		tree:   tree,
		seq:    seq,
		pub:    pub,
		source: source,
		log:    logrus.WithFields(logrus.Fields{"pkg": "service", "source": source}),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Insert adds elem. It returns false for a duplicate and an error wrapping
// rbtree.ErrNilElement for a nil element.
func (s *SetService[E]) Insert(ctx context.Context, elem E) (ok bool, err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "rbset.Insert")
	defer func() {
		span.SetTag("inserted", ok)
		span.Finish(tracer.WithError(err))
	}()

	var rev uint64
	s.mu.Lock()
	ok, err = s.tree.Insert(elem)
	if ok {
		rev = s.seq.Next()
	}
	s.mu.Unlock()

	if err != nil {
		return false, errors.Wrap(err, "unable to insert")
	}
	if ok {
		s.publish(ctx, rev, elem)
	}
	return ok, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *SetService[E]) Contains(ctx context.Context, elem E) bool {
	span, _ := tracer.StartSpanFromContext(ctx, "rbset.Contains")
	defer span.Finish()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Contains(elem)
}

func (s *SetService[E]) IsEmpty(ctx context.Context) bool {
	span, _ := tracer.StartSpanFromContext(ctx, "rbset.IsEmpty")
	defer span.Finish()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.IsEmpty()
}

// Dump returns the pre-order rendering of the tree.
func (s *SetService[E]) Dump(ctx context.Context) string {
	span, _ := tracer.StartSpanFromContext(ctx, "rbset.Dump")
	defer span.Finish()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.String()
}

func (s *SetService[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Revision returns the revision of the latest accepted insertion.
func (s *SetService[E]) Revision() uint64 {
	return s.seq.Current()
}

func (s *SetService[E]) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Verify()
}

//
// ──────────────────────────────────────────────────────────
// Events
// ──────────────────────────────────────────────────────────
//

// publish is best effort: the tree has already changed, so a failed send
// is logged and dropped.
func (s *SetService[E]) publish(ctx context.Context, rev uint64, elem E) {
	if s.pub == nil {
		return
	}

	text := fmt.Sprint(elem)
	payload, err := json.Marshal(Event{
		V:       EventVersion,
		Type:    EventInsert,
		Seq:     rev,
		Source:  s.source,
		Element: text,
	})
	if err != nil {
		s.log.WithError(err).Error("unable to encode event")
		return
	}

	if err := s.pub.Send(ctx, []byte(text), payload); err != nil {
		s.log.WithError(err).WithField("seq", rev).Warn("unable to publish insert event")
	}
}
