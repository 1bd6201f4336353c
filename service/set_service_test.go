package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"rbset/infra/sequence"
	"rbset/rbtree"
)

type sent struct {
	key   string
	value []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []sent
	err  error
}

func (f *fakePublisher) Send(_ context.Context, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, sent{key: string(key), value: value})
	return nil
}

func (f *fakePublisher) events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, 0, len(f.msgs))
	for _, m := range f.msgs {
		var ev Event
		Expect(json.Unmarshal(m.value, &ev)).To(Succeed())
		Expect(ev.Element).To(Equal(m.key))
		out = append(out, ev)
	}
	return out
}

var _ = Describe("SetService", func() {
	var (
		ctx = context.Background()
		pub *fakePublisher
		svc *SetService[int]
	)

	BeforeEach(func() {
		pub = &fakePublisher{}
		svc = NewSetService(rbtree.New[int](), sequence.New(0), pub)
	})

	Context("Insert", func() {
		It("accepts new elements and rejects duplicates", func() {
			Expect(svc.IsEmpty(ctx)).To(BeTrue())

			for _, v := range []int{10, 20, 30} {
				ok, err := svc.Insert(ctx, v)
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeTrue())
			}

			ok, err := svc.Insert(ctx, 20)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeFalse())

			Expect(svc.IsEmpty(ctx)).To(BeFalse())
			Expect(svc.Len()).To(Equal(3))
			Expect(svc.Dump(ctx)).To(Equal("20 *10 *30 "))
			Expect(svc.Contains(ctx, 30)).To(BeTrue())
			Expect(svc.Contains(ctx, 40)).To(BeFalse())
			Expect(svc.Verify()).To(Succeed())
		})

		It("assigns a revision per accepted insert", func() {
			_, _ = svc.Insert(ctx, 1)
			_, _ = svc.Insert(ctx, 1)
			_, _ = svc.Insert(ctx, 2)
			Expect(svc.Revision()).To(Equal(uint64(2)))
		})

		It("publishes one event per accepted insert", func() {
			_, _ = svc.Insert(ctx, 5)
			_, _ = svc.Insert(ctx, 5)
			_, _ = svc.Insert(ctx, 7)

			events := pub.events()
			Expect(events).To(HaveLen(2))
			Expect(events[0]).To(Equal(Event{V: EventVersion, Type: EventInsert, Seq: 1, Source: svc.source, Element: "5"}))
			Expect(events[1].Seq).To(Equal(uint64(2)))
			Expect(events[1].Element).To(Equal("7"))
		})

		It("keeps the insert when publishing fails", func() {
			hook := test.NewGlobal()
			defer hook.Reset()

			pub.err = errors.New("broker down")
			ok, err := svc.Insert(ctx, 9)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(svc.Contains(ctx, 9)).To(BeTrue())

			Expect(hook.LastEntry()).ToNot(BeNil())
			Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
		})

		It("works without a publisher", func() {
			quiet := NewSetService(rbtree.New[int](), sequence.New(0), nil)
			ok, err := quiet.Insert(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("rejects nil elements without mutating", func() {
			ptrs := NewSetService(rbtree.NewFunc(func(a, b *int) int { return *a - *b }), sequence.New(0), pub)

			ok, err := ptrs.Insert(ctx, nil)
			Expect(ok).To(BeFalse())
			Expect(errors.Cause(err)).To(Equal(rbtree.ErrNilElement))
			Expect(ptrs.IsEmpty(ctx)).To(BeTrue())
			Expect(ptrs.Revision()).To(Equal(uint64(0)))
			Expect(pub.events()).To(BeEmpty())
		})

		It("serializes concurrent writers", func() {
			var wg sync.WaitGroup
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(w int) {
					defer GinkgoRecover()
					defer wg.Done()
					for i := 0; i < 200; i++ {
						_, err := svc.Insert(ctx, i*8+w)
						Expect(err).ToNot(HaveOccurred())
						svc.Contains(ctx, i)
					}
				}(w)
			}
			wg.Wait()

			Expect(svc.Len()).To(Equal(1600))
			Expect(svc.Revision()).To(Equal(uint64(1600)))
			Expect(svc.Verify()).To(Succeed())
		})
	})

	Context("verifyOnce", func() {
		It("logs an error when the tree breaks its invariants", func() {
			hook := test.NewGlobal()
			defer hook.Reset()

			descending := false
			tree := rbtree.NewFunc(func(a, b int) int {
				if descending {
					return b - a
				}
				return a - b
			})
			broken := NewSetService(tree, sequence.New(0), nil)
			for _, v := range []int{1, 2, 3} {
				_, err := broken.Insert(ctx, v)
				Expect(err).ToNot(HaveOccurred())
			}

			// the stored order no longer matches the comparator
			descending = true
			Expect(broken.Verify()).To(HaveOccurred())

			broken.verifyOnce()

			entry := hook.LastEntry()
			Expect(entry).ToNot(BeNil())
			Expect(entry.Level).To(Equal(logrus.ErrorLevel))
			Expect(entry.Message).To(Equal("tree invariant violated"))
			Expect(entry.Data).To(HaveKeyWithValue("size", 3))
			Expect(entry.Data).To(HaveKey(logrus.ErrorKey))
		})
	})

	Context("StartVerifyJob", func() {
		It("verifies the tree periodically", func() {
			hook := test.NewGlobal()
			defer hook.Reset()
			logrus.SetLevel(logrus.DebugLevel)
			defer logrus.SetLevel(logrus.InfoLevel)

			_, _ = svc.Insert(ctx, 1)

			jobCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			svc.StartVerifyJob(jobCtx, 10*time.Millisecond)

			Eventually(func() bool {
				for _, e := range hook.AllEntries() {
					if e.Message == "tree verified" {
						return true
					}
				}
				return false
			}, time.Second, 10*time.Millisecond).Should(BeTrue())
		})
	})
})
