package task

import (
	"sync"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/sagernet/sing-fetch/common/log"
)

var logger = log.NewLogger("task")

// Destination is a serial task queue: units of work scheduled on the same
// destination run one at a time, in scheduling order, and never on the
// scheduler's own stack. The worker goroutine is started on demand and exits
// once the queue drains.
type Destination struct {
	access  sync.Mutex
	queue   []func()
	running bool
}

func NewDestination() *Destination {
	return new(Destination)
}

func (d *Destination) Schedule(work func()) {
	d.access.Lock()
	d.queue = append(d.queue, work)
	if d.running {
		d.access.Unlock()
		return
	}
	d.running = true
	d.access.Unlock()
	gopool.Go(d.process)
}

func (d *Destination) process() {
	for {
		d.access.Lock()
		if len(d.queue) == 0 {
			d.running = false
			d.access.Unlock()
			return
		}
		work := d.queue[0]
		d.queue = d.queue[1:]
		d.access.Unlock()
		d.run(work)
	}
}

func (d *Destination) run(work func()) {
	defer func() {
		if value := recover(); value != nil {
			logger.Warn("task panic: ", value)
		}
	}()
	work()
}
