package service

import (
	"context"
	"time"

	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"
)

// StartVerifyJob checks the tree invariants every interval until ctx is
// done. Violations are logged; the job keeps running.
func (s *SetService[E]) StartVerifyJob(
	ctx context.Context,
	interval time.Duration,
) director.Looper {
	looper := director.NewTimedLooper(director.FOREVER, interval, make(chan error, 1))

	go looper.Loop(func() error {
		select {
		case <-ctx.Done():
			looper.Quit()
			return nil
		default:
		}

		s.verifyOnce()
		return nil
	})

	return looper
}

func (s *SetService[E]) verifyOnce() {
	s.mu.RLock()
	err := s.tree.Verify()
	size, height := s.tree.Len(), s.tree.Height()
	s.mu.RUnlock()

	llog := s.log.WithFields(logrus.Fields{
		"size":     size,
		"height":   height,
		"revision": s.seq.Current(),
	})
	if err != nil {
		llog.WithError(err).Error("tree invariant violated")
		return
	}
	llog.Debug("tree verified")
}
