package menu

import "strconv"

// Tip is an item's tooltip policy. A nil policy falls back to the handler's
// return value, TipText always shows a literal string, and TipFunc derives
// the text from the handler result. Precedence is strict: a TipFunc result
// wins, then literal text, then the raw handler result.
type Tip interface {
	isTip()
}

// TipText shows a literal string after every dispatch of the item,
// regardless of what the handler returned. The empty string behaves like an
// unset policy.
type TipText string

func (TipText) isTip() {}

// TipFunc transforms the handler result into tooltip text. Returning the
// empty string suppresses the tooltip.
type TipFunc func(c *Controller, result any) string

func (TipFunc) isTip() {}

// resolveTip applies the tooltip resolution rules to a policy and a handler
// result. The boolean reports whether anything should be displayed.
func resolveTip(c *Controller, tip Tip, result any) (string, bool) {
	switch t := tip.(type) {
	case TipFunc:
		if t == nil {
			break
		}
		text := t(c, result)
		if text == "" {
			return "", false
		}
		return text, true
	case TipText:
		if t != "" {
			return string(t), true
		}
	}
	return formatResult(result)
}

// formatResult renders a handler result as displayable text. Non-empty
// strings and numbers (zero included) display; empty strings and anything
// else display nothing.
func formatResult(result any) (string, bool) {
	switch v := result.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
