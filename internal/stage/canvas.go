package stage

import "sync"

// Object is an in-memory drawable used by the headless canvas.
type Object struct {
	mu    sync.Mutex
	props map[Property]float64
}

func NewObject() *Object {
	return &Object{
		props: map[Property]float64{
			PropOpacity: 1,
			PropScaleX:  1,
			PropScaleY:  1,
		},
	}
}

func (o *Object) GetProperty(p Property) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.props[p]
}

func (o *Object) SetProperty(p Property, v float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.props[p] = v
}

// Canvas is a minimal headless scene graph: element id -> drawable.
// It stands in for the real canvas object provider during tests and
// headless runs.
type Canvas struct {
	mu      sync.Mutex
	objects map[string]*Object
}

func NewCanvas() *Canvas {
	return &Canvas{objects: make(map[string]*Object)}
}

// Add mounts a fresh drawable under id and returns it. Adding an id
// twice replaces the previous object.
func (c *Canvas) Add(id string) *Object {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj := NewObject()
	c.objects[id] = obj
	return obj
}

// Lookup resolves the drawable mounted under id.
func (c *Canvas) Lookup(id string) (*Object, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj, ok := c.objects[id]
	return obj, ok
}

// Remove unmounts the drawable under id. Unknown ids are ignored.
func (c *Canvas) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.objects, id)
}

// Len returns the number of mounted drawables.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.objects)
}
