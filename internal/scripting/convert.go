package scripting

import lua "github.com/yuin/gopher-lua"

// ToGo converts a Lua value returned by a hook into plain Go values.
// Tables with a non-empty array part become []any; other tables become
// map[string]any keyed by the string form of each key. Functions and
// userdata become their string form.
func ToGo(v lua.LValue) any {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		if n := val.MaxN(); n > 0 {
			out := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, ToGo(val.RawGetInt(i)))
			}
			return out
		}
		out := make(map[string]any)
		val.ForEach(func(k, item lua.LValue) {
			out[k.String()] = ToGo(item)
		})
		return out
	default:
		return v.String()
	}
}
