package events

import "github.com/atomicstack/menuctl/internal/logging"

type MenuTracer struct{}

type DispatchTracer struct{}

type TooltipTracer struct{}

var (
	Menu     = MenuTracer{}
	Dispatch = DispatchTracer{}
	Tooltip  = TooltipTracer{}
)

func (MenuTracer) Add(name, options string) {
	logging.Trace("menu.add", map[string]interface{}{"name": name, "options": options})
}

func (MenuTracer) Insert(before, name string) {
	logging.Trace("menu.insert", map[string]interface{}{"before": before, "name": name})
}

func (MenuTracer) Delete(name string) {
	logging.Trace("menu.delete", map[string]interface{}{"name": name})
}

func (MenuTracer) DeletePattern(pattern string, count int) {
	logging.Trace("menu.delete-pattern", map[string]interface{}{"pattern": pattern, "count": count})
}

func (MenuTracer) Rename(oldName, newName string) {
	logging.Trace("menu.rename", map[string]interface{}{"old": oldName, "new": newName})
}

func (DispatchTracer) Activate(mode int, entry, x, y int, rightClick bool) {
	logging.Trace("dispatch.activate", map[string]interface{}{
		"mode":       mode,
		"entry":      entry,
		"x":          x,
		"y":          y,
		"rightClick": rightClick,
	})
}

func (DispatchTracer) Select(name string, position int, token bool) {
	logging.Trace("dispatch.select", map[string]interface{}{
		"name":     name,
		"position": position,
		"token":    token,
	})
}

func (DispatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("dispatch.error", map[string]interface{}{"error": err.Error()})
}

func (TooltipTracer) Show(slot int, text string) {
	logging.Trace("tooltip.show", map[string]interface{}{"slot": slot, "text": text})
}

func (TooltipTracer) End(slot int) {
	logging.Trace("tooltip.end", map[string]interface{}{"slot": slot})
}
