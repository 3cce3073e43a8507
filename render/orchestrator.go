package render

import "github.com/lixenwraith/kitty-run/game"

type rendererEntry struct {
	renderer LayerRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline for one surface
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator with the pickup and player layers registered
func NewOrchestrator(atlas Atlas) *Orchestrator {
	o := &Orchestrator{renderers: make([]rendererEntry, 0, 4)}
	o.Register(PickupRenderer{}, PriorityPickups)
	o.Register(NewPlayerRenderer(atlas), PriorityPlayer)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r LayerRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all layers, present
func (o *Orchestrator) RenderFrame(surface Surface, session *game.Session) {
	surface.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(surface, session)
	}

	surface.Present()
}
