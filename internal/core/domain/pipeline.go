// Package domain contains the core model of the build pipeline: steps, the
// dependency graph between them, the build environment, and run reports.
package domain

import (
	"iter"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Pipeline is the dependency graph of build steps.
type Pipeline struct {
	steps          map[InternedString]Step
	dependents     map[InternedString][]InternedString
	executionOrder []InternedString
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		steps:      make(map[InternedString]Step),
		dependents: make(map[InternedString][]InternedString),
	}
}

// AddStep adds a step to the pipeline.
// It returns ErrStepAlreadyExists if the name is already taken.
func (p *Pipeline) AddStep(s *Step) error {
	if _, exists := p.steps[s.Name]; exists {
		return zerr.With(zerr.Wrap(ErrStepAlreadyExists, "adding step"), "step", s.Name.String())
	}
	p.steps[s.Name] = *s
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// Step returns the step with the given name.
func (p *Pipeline) Step(name InternedString) (Step, error) {
	s, ok := p.steps[name]
	if !ok {
		return Step{}, zerr.With(zerr.Wrap(ErrStepNotFound, "looking up step"), "step", name.String())
	}
	return s, nil
}

// Validate checks the graph for missing dependencies and cycles using a
// depth-first topological sort, and records the execution order and the
// reverse edges. Roots are visited in sorted name order so the resulting
// order is deterministic.
func (p *Pipeline) Validate() error {
	p.executionOrder = make([]InternedString, 0, len(p.steps))
	p.dependents = make(map[InternedString][]InternedString, len(p.steps))

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[InternedString]int, len(p.steps))
	var path []InternedString

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		state[name] = visiting
		path = append(path, name)

		step, exists := p.steps[name]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "validating pipeline"), "dependency", name.String())
		}

		for _, dep := range step.DependsOn {
			switch state[dep] {
			case visiting:
				return cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
			p.dependents[dep] = append(p.dependents[dep], name)
		}

		state[name] = visited
		path = path[:len(path)-1]
		p.executionOrder = append(p.executionOrder, name)
		return nil
	}

	for _, name := range p.sortedNames() {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// Walk yields steps in execution order. Validate must have succeeded first.
func (p *Pipeline) Walk() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, name := range p.executionOrder {
			if !yield(p.steps[name]) {
				return
			}
		}
	}
}

// Dependents returns the steps that directly depend on name.
// Validate must have succeeded first.
func (p *Pipeline) Dependents(name InternedString) []InternedString {
	return p.dependents[name]
}

// Subset returns a new pipeline containing the target steps and their
// transitive dependencies. An empty target list returns p unchanged.
func (p *Pipeline) Subset(targets []InternedString) (*Pipeline, error) {
	if len(targets) == 0 {
		return p, nil
	}

	keep := make(map[InternedString]bool)
	var mark func(name InternedString) error
	mark = func(name InternedString) error {
		if keep[name] {
			return nil
		}
		step, ok := p.steps[name]
		if !ok {
			return zerr.With(zerr.Wrap(ErrStepNotFound, "resolving target"), "step", name.String())
		}
		keep[name] = true
		for _, dep := range step.DependsOn {
			if err := mark(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, target := range targets {
		if err := mark(target); err != nil {
			return nil, err
		}
	}

	sub := NewPipeline()
	for name, step := range p.steps {
		if keep[name] {
			s := step
			_ = sub.AddStep(&s)
		}
	}
	return sub, nil
}

func (p *Pipeline) sortedNames() []InternedString {
	names := make([]InternedString, 0, len(p.steps))
	for name := range p.steps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].String() < names[j].String()
	})
	return names
}

func cycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}

	var b strings.Builder
	for _, node := range path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "validating pipeline"), "cycle", b.String())
}
