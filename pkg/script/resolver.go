package script

import (
	"fmt"

	"github.com/dop251/goja"

	"overlaykit/pkg/overlay"
)

// Resolver evaluates custom-anchor position expressions. An expression is a
// JavaScript snippet that sees a `container` global with `width` and `height`
// and must produce an object with numeric `x` and `y`, for example
//
//	({x: container.width - 48, y: 8})
//
// A Resolver owns a single goja runtime and is not safe for concurrent use.
type Resolver struct {
	vm *goja.Runtime
}

// New creates a resolver with a fresh goja runtime.
func New() *Resolver {
	return &Resolver{vm: goja.New()}
}

// Resolve evaluates expr against the given container and returns the base
// offset it describes.
func (r *Resolver) Resolve(expr string, container overlay.ContainerSize) (x, y float64, err error) {
	if err := r.vm.Set("container", map[string]interface{}{
		"width":  container.Width,
		"height": container.Height,
	}); err != nil {
		return 0, 0, fmt.Errorf("bind container: %w", err)
	}

	v, err := r.vm.RunString(expr)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, 0, fmt.Errorf("expression %q produced no value", expr)
	}

	obj := v.ToObject(r.vm)
	xv := obj.Get("x")
	yv := obj.Get("y")
	if xv == nil || yv == nil || goja.IsUndefined(xv) || goja.IsUndefined(yv) {
		return 0, 0, fmt.Errorf("expression %q must produce an object with x and y", expr)
	}
	return xv.ToFloat(), yv.ToFloat(), nil
}

// Place positions the index-th control at a scripted custom anchor. The
// expression supplies the base offset and the overlay calculator supplies the
// sibling stacking on top of it.
func (r *Resolver) Place(expr string, container overlay.ContainerSize, index int, explicit *overlay.GrowDirection, m overlay.Metrics) (overlay.PositionResult, error) {
	x, y, err := r.Resolve(expr, container)
	if err != nil {
		return overlay.PositionResult{}, err
	}
	res := overlay.CalculatePosition(container, overlay.Custom, index, explicit, m)
	res.X += x
	res.Y += y
	return res, nil
}
