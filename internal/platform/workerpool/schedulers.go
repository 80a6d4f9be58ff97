// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"fmt"
	"sort"
	"strings"
)

// Scheduler names accepted by SchedulerByName.
const (
	SchedulerFIFO     = "fifo"
	SchedulerPriority = "priority"
	SchedulerWeighted = "weighted"
)

// SchedulerByName returns the scheduler registered under name.
func SchedulerByName(name string) (Scheduler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchedulerFIFO:
		return NewFIFOScheduler(), nil
	case SchedulerPriority:
		return NewPriorityScheduler(), nil
	case SchedulerWeighted:
		return NewWeightedScheduler(), nil
	default:
		return nil, fmt.Errorf("unknown scheduler %q (want fifo, priority or weighted)", name)
	}
}

// FIFOScheduler keeps submission order.
type FIFOScheduler struct{}

func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

func (s *FIFOScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

func (s *FIFOScheduler) Name() string {
	return SchedulerFIFO
}

// PriorityScheduler queues higher priorities first; ties go to the
// lighter task, then to submission order.
type PriorityScheduler struct{}

func NewPriorityScheduler() *PriorityScheduler {
	return &PriorityScheduler{}
}

func (s *PriorityScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)

	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].Priority() != scheduled[j].Priority() {
			return scheduled[i].Priority() > scheduled[j].Priority()
		}
		return scheduled[i].Weight() < scheduled[j].Weight()
	})

	return scheduled
}

func (s *PriorityScheduler) Name() string {
	return SchedulerPriority
}

// WeightedScheduler queues the cheapest tasks first.
type WeightedScheduler struct{}

func NewWeightedScheduler() *WeightedScheduler {
	return &WeightedScheduler{}
}

func (s *WeightedScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)

	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].Weight() != scheduled[j].Weight() {
			return scheduled[i].Weight() < scheduled[j].Weight()
		}
		return scheduled[i].Priority() > scheduled[j].Priority()
	})

	return scheduled
}

func (s *WeightedScheduler) Name() string {
	return SchedulerWeighted
}
