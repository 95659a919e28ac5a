package scripting

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/jobgear/internal/game/inventory"
	"github.com/cory-johannsen/jobgear/internal/game/ruleset"
)

// RegisterModules registers all engine.* Lua tables into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L with log, jobs, and slots tables.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.newLogModule(L))
	L.SetField(engine, "jobs", m.newJobsModule(L))
	L.SetField(engine, "slots", newSlotsModule(L))
	L.SetGlobal("engine", engine)
}

func (m *Manager) newLogModule(L *lua.LState) *lua.LTable {
	logAt := func(log func(string, ...zap.Field)) lua.LGFunction {
		return func(L *lua.LState) int {
			log(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}
	}
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"debug": logAt(m.logger.Debug),
		"info":  logAt(m.logger.Info),
		"warn":  logAt(m.logger.Warn),
		"error": logAt(m.logger.Error),
	})
}

func (m *Manager) newJobsModule(L *lua.LState) *lua.LTable {
	jobs := m.taxonomy.Jobs()
	restrictions := m.taxonomy.Restrictions()

	// withJob calls fn with the job named by argument 1, or pushes nil when unknown.
	withJob := func(fn func(L *lua.LState, j *ruleset.Job) lua.LValue) lua.LGFunction {
		return func(L *lua.LState) int {
			j, ok := jobs.Job(L.CheckString(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(fn(L, j))
			return 1
		}
	}

	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"lookup": withJob(jobTable),
		"all": func(L *lua.LState) int {
			L.Push(stringList(L, jobs.All().Abbreviations()))
			return 1
		},
		"with_descendants": withJob(func(L *lua.LState, j *ruleset.Job) lua.LValue {
			return stringList(L, j.WithDescendants().Abbreviations())
		}),
		"relevant_stats": withJob(func(L *lua.LState, j *ruleset.Job) lua.LValue {
			return stringList(L, j.RelevantStats().Strings())
		}),
		"resolve": func(L *lua.LState) int {
			set, ok := restrictions.Resolve(L.CheckString(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(stringList(L, set.Abbreviations()))
			return 1
		},
		"can_equip": func(L *lua.LState) int {
			code := L.CheckString(1)
			j, ok := jobs.Job(L.CheckString(2))
			L.Push(lua.LBool(ok && restrictions.Allows(code, j)))
			return 1
		},
	})
}

func newSlotsModule(L *lua.LState) *lua.LTable {
	slotArg := func(L *lua.LState) (inventory.Slot, bool) {
		code := L.CheckString(1)
		r, size := utf8.DecodeRuneInString(code)
		if size == 0 || size != len(code) {
			return "", false
		}
		return inventory.SlotByCode(r)
	}

	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"all": func(L *lua.LState) int {
			all := inventory.AllSlots()
			names := make([]string, len(all))
			for i, s := range all {
				names[i] = string(s)
			}
			L.Push(stringList(L, names))
			return 1
		},
		"name": func(L *lua.LState) int {
			s, ok := slotArg(L)
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(inventory.SlotDisplayName(string(s))))
			return 1
		},
		"is_primary": func(L *lua.LState) int {
			s, ok := slotArg(L)
			L.Push(lua.LBool(ok && s.IsPrimary()))
			return 1
		},
	})
}

func jobTable(L *lua.LState, j *ruleset.Job) lua.LValue {
	t := L.NewTable()
	t.RawSetString("abbreviation", lua.LString(j.Abbreviation()))
	t.RawSetString("name", lua.LString(j.Name()))
	t.RawSetString("family", lua.LString(j.Family()))
	t.RawSetString("category", lua.LString(j.Category()))
	t.RawSetString("armor", lua.LString(j.Armor().String()))
	t.RawSetString("main_stats", stringList(L, j.MainStats().Strings()))
	t.RawSetString("supporting_stats", stringList(L, j.SupportingStats().Strings()))
	t.RawSetString("descendants", stringList(L, j.Descendants().Abbreviations()))
	return t
}

func stringList(L *lua.LState, values []string) *lua.LTable {
	t := L.CreateTable(len(values), 0)
	for _, v := range values {
		t.Append(lua.LString(v))
	}
	return t
}
