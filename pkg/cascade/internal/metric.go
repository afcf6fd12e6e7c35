package internal

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names exported by every menu.
const (
	TransitionsMetric = "cascade_menu_transitions_total"
	SelectionsMetric  = "cascade_menu_selections_total"
	OpensMetric       = "cascade_menu_opens_total"
)

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a prometheus CounterVec.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter vector on reg. If an identical
// collector is already registered, for example by another menu sharing the
// registry, that collector is reused.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				counter = existing
			}
		} else {
			panic(err)
		}
	}

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// MenuMetrics groups the counters a menu updates.
type MenuMetrics struct {
	Transitions IncrementalCounter // labels: menu, direction
	Selections  IncrementalCounter // labels: menu
	Opens       IncrementalCounter // labels: menu
}

// NewMenuMetrics registers the menu counters on reg.
func NewMenuMetrics(reg prometheus.Registerer) *MenuMetrics {
	return &MenuMetrics{
		Transitions: NewCounterWithRegistry(reg, TransitionsMetric,
			"Number of cursor moves between menu levels.", "menu", "direction"),
		Selections: NewCounterWithRegistry(reg, SelectionsMetric,
			"Number of leaf items selected.", "menu"),
		Opens: NewCounterWithRegistry(reg, OpensMetric,
			"Number of times the menu went from closed to open.", "menu"),
	}
}
