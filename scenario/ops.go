package scenario

import (
	"fmt"

	"hop.computer/dlist/config"
	"hop.computer/dlist/pkg/list"
)

func (r *Runner) bind(name string, n *list.Node[string]) {
	if name != "" {
		r.nodes[name] = n
	}
}

func (r *Runner) lookup(name string) (*list.Node[string], error) {
	n, ok := r.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownNode, name)
	}
	return n, nil
}

func (r *Runner) push(step config.Step) ([]string, error) {
	if r.destroyed {
		return nil, ErrListDestroyed
	}
	r.bind(step.Node, r.list.Push(step.Value))
	return nil, nil
}

func (r *Runner) unshift(step config.Step) ([]string, error) {
	if r.destroyed {
		return nil, ErrListDestroyed
	}
	r.bind(step.Node, r.list.Unshift(step.Value))
	return nil, nil
}

func (r *Runner) pop(step config.Step) ([]string, error) {
	v, ok := r.list.Pop()
	if !ok {
		return []string{}, nil
	}
	return []string{v}, nil
}

func (r *Runner) shift(step config.Step) ([]string, error) {
	v, ok := r.list.Shift()
	if !ok {
		return []string{}, nil
	}
	return []string{v}, nil
}

// newNode binds a detached node, to be linked later with before or after.
func (r *Runner) newNode(step config.Step) ([]string, error) {
	if step.Node == "" {
		return nil, fmt.Errorf("new needs a node name")
	}
	r.bind(step.Node, list.NewNode(step.Value))
	return nil, nil
}

func (r *Runner) get(step config.Step) ([]string, error) {
	n, err := r.lookup(step.Node)
	if err != nil {
		return nil, err
	}
	return []string{n.Get()}, nil
}

func (r *Runner) set(step config.Step) ([]string, error) {
	n, err := r.lookup(step.Node)
	if err != nil {
		return nil, err
	}
	n.Set(step.Value)
	return nil, nil
}

func (r *Runner) relocate(step config.Step, move func(n, target *list.Node[string]) error) ([]string, error) {
	n, err := r.lookup(step.Node)
	if err != nil {
		return nil, err
	}
	target, err := r.lookup(step.Target)
	if err != nil {
		return nil, err
	}
	return nil, move(n, target)
}

func (r *Runner) before(step config.Step) ([]string, error) {
	return r.relocate(step, (*list.Node[string]).Before)
}

func (r *Runner) after(step config.Step) ([]string, error) {
	return r.relocate(step, (*list.Node[string]).After)
}

func (r *Runner) remove(step config.Step) ([]string, error) {
	n, err := r.lookup(step.Node)
	if err != nil {
		return nil, err
	}
	return nil, n.Remove()
}

func (r *Runner) destroy(step config.Step) ([]string, error) {
	n, err := r.lookup(step.Node)
	if err != nil {
		return nil, err
	}
	v, err := n.Destroy()
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}

func (r *Runner) validate(step config.Step) ([]string, error) {
	return nil, r.list.Validate(r.scenario.Trace)
}

// seq returns the sequence anchored at the step's node, or the list's
// sequence when the step names no node.
func (r *Runner) seq(step config.Step, fromList func() list.Seq[string], fromNode func(n *list.Node[string]) list.Seq[string]) (list.Seq[string], error) {
	if step.Node == "" {
		return fromList(), nil
	}
	n, err := r.lookup(step.Node)
	if err != nil {
		return list.Seq[string]{}, err
	}
	return fromNode(n), nil
}

func (r *Runner) forward(step config.Step) ([]string, error) {
	s, err := r.seq(step, r.list.Forward, (*list.Node[string]).Forward)
	if err != nil {
		return nil, err
	}
	return collect(s), nil
}

func (r *Runner) backward(step config.Step) ([]string, error) {
	s, err := r.seq(step, r.list.Backward, (*list.Node[string]).Backward)
	if err != nil {
		return nil, err
	}
	return collect(s), nil
}

func (r *Runner) eitherSeq(step config.Step) (list.Seq[string], error) {
	return r.seq(step,
		func() list.Seq[string] { return r.list.Either(step.Reverse) },
		func(n *list.Node[string]) list.Seq[string] { return n.Either(step.Reverse) })
}

func (r *Runner) either(step config.Step) ([]string, error) {
	s, err := r.eitherSeq(step)
	if err != nil {
		return nil, err
	}
	return collect(s), nil
}

// turn takes one step from the anchor, then turns the cursor around and walks
// until the list ends in the new direction.
func (r *Runner) turn(step config.Step) ([]string, error) {
	s, err := r.eitherSeq(step)
	if err != nil {
		return nil, err
	}
	out := []string{}
	c := s.AnyCursor()
	n, ok := c.Next()
	if !ok {
		return out, nil
	}
	out = append(out, n.Get())
	c.Turn()
	for n, ok := c.Next(); ok; n, ok = c.Next() {
		out = append(out, n.Get())
	}
	return out, nil
}

func (r *Runner) destroyList(step config.Step) ([]string, error) {
	r.list.Destroy()
	r.destroyed = true
	return nil, nil
}
