package ain

import "github.com/pkg/errors"

// decodeTag dispatches one tag record (§6.1) into p, reading its body from
// r. An unrecognized tag is reported to the caller so the walk loop can
// stop silently -- forward-compatible tags are expected, not an error.
func decodeTag(tag string, r *reader, p *Program) (known bool, err error) {
	switch tag {
	case "VERS":
		p.Version, err = r.u32()
		p.sawVers = err == nil
	case "KEYC":
		p.KeyCode, err = r.u32()
	case "CODE":
		var n int32
		if n, err = r.u32(); err == nil {
			p.Code, err = r.bytes(int(n))
		}
	case "FUNC":
		p.Functions, err = decodeFunctions(r, p.Version)
	case "GLOB":
		p.Globals, err = decodeGlobals(r, p.Version)
	case "GSET":
		p.GlobalInitVals, err = decodeInitVals(r)
	case "STRT":
		p.Structures, err = decodeStructs(r)
	case "MSG0":
		p.Messages, err = decodeCStringTable(r)
	case "MSG1":
		p.Messages, p.MSG1Unknown, err = decodeMSG1(r)
	case "MAIN":
		p.MainFunction, err = r.u32()
	case "MSGF":
		p.MessageFunction, err = r.u32()
	case "HLL0":
		p.Libraries, err = decodeLibraries(r)
	case "SWI0":
		p.Switches, err = decodeSwitches(r)
	case "GVER":
		p.GameVersion, err = r.u32()
	case "STR0":
		p.Strings, err = decodeCStringTable(r)
	case "FNAM":
		p.Filenames, err = decodeCStringTable(r)
	case "OJMP":
		p.OnJumpFunction, err = r.u32()
	case "FNCT":
		p.FunctionTypesLeading, p.FunctionTypes, err = decodeFunctionTypes(r)
	case "OBJG":
		p.GlobalGroupNames, err = decodeCStringTable(r)
	default:
		return false, nil
	}
	return true, err
}

func decodeVariable(r *reader) (Variable, error) {
	var v Variable
	name, err := r.cstring()
	if err != nil {
		return v, err
	}
	v.Name = string(name)
	t, err := r.u32()
	if err != nil {
		return v, err
	}
	v.Type = DataType(t)
	if v.StructType, err = r.u32(); err != nil {
		return v, err
	}
	v.ArrayRank, err = r.u32()
	return v, err
}

func decodeVariables(r *reader, count int32) ([]Variable, error) {
	vars := make([]Variable, count)
	for i := range vars {
		v, err := decodeVariable(r)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %d", i)
		}
		vars[i] = v
	}
	return vars, nil
}

func decodeCStringTable(r *reader) ([]string, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	return decodeCStrings(r, count)
}

func decodeCStrings(r *reader, count int32) ([]string, error) {
	out := make([]string, count)
	for i := range out {
		s, err := r.cstring()
		if err != nil {
			return nil, errors.Wrapf(err, "string %d", i)
		}
		out[i] = string(s)
	}
	return out, nil
}

// decodeMSG1 reads the length-prefixed, per-byte-obfuscated message table
// introduced alongside newer image versions (§6.1). Each byte is reversed
// with s[i] -= i; s[i] -= 0x60 before being treated as shift-JIS text.
func decodeMSG1(r *reader) ([]string, int32, error) {
	count, err := r.u32()
	if err != nil {
		return nil, 0, err
	}
	unknown, err := r.u32()
	if err != nil {
		return nil, 0, err
	}
	out := make([]string, count)
	for i := range out {
		n, err := r.u32()
		if err != nil {
			return nil, 0, errors.Wrapf(err, "message %d length", i)
		}
		raw, err := r.bytes(int(n))
		if err != nil {
			return nil, 0, errors.Wrapf(err, "message %d body", i)
		}
		for j := range raw {
			raw[j] -= byte(j)
			raw[j] -= 0x60
		}
		out[i] = string(raw)
	}
	return out, unknown, nil
}

func decodeFunctions(r *reader, version int32) ([]Function, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	funcs := make([]Function, count)
	for i := range funcs {
		f := &funcs[i]
		if f.Address, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "function %d", i)
		}
		name, err := r.cstring()
		if err != nil {
			return nil, errors.Wrapf(err, "function %d name", i)
		}
		f.Name = string(name)
		if version > 0 && version < 7 {
			label, err := r.u32()
			if err != nil {
				return nil, errors.Wrapf(err, "function %d is_label", i)
			}
			f.IsLabel = label != 0
		}
		retType, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "function %d return type", i)
		}
		f.ReturnType = DataType(retType)
		if f.StructType, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "function %d struct type", i)
		}
		if f.NrArgs, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "function %d nr_args", i)
		}
		if f.NrVars, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "function %d nr_vars", i)
		}
		if version > 0 {
			if f.CRC, err = r.u32(); err != nil {
				return nil, errors.Wrapf(err, "function %d crc", i)
			}
		}
		if f.NrVars > 0 {
			if f.Vars, err = decodeVariables(r, f.NrVars); err != nil {
				return nil, errors.Wrapf(err, "function %d vars", i)
			}
		}
	}
	return funcs, nil
}

func decodeGlobals(r *reader, version int32) ([]Global, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	globals := make([]Global, count)
	for i := range globals {
		g := &globals[i]
		name, err := r.cstring()
		if err != nil {
			return nil, errors.Wrapf(err, "global %d name", i)
		}
		g.Name = string(name)
		t, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "global %d type", i)
		}
		g.Type = DataType(t)
		if g.StructType, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "global %d struct type", i)
		}
		if g.ArrayRank, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "global %d array rank", i)
		}
		if version >= 5 {
			if g.GroupIndex, err = r.u32(); err != nil {
				return nil, errors.Wrapf(err, "global %d group index", i)
			}
		}
	}
	return globals, nil
}

func decodeInitVals(r *reader) ([]InitVal, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	vals := make([]InitVal, count)
	for i := range vals {
		v := &vals[i]
		if v.GlobalIndex, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "initval %d global index", i)
		}
		t, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "initval %d type", i)
		}
		v.Type = DataType(t)
		if v.Type == String {
			s, err := r.cstring()
			if err != nil {
				return nil, errors.Wrapf(err, "initval %d string", i)
			}
			v.StringValue = string(s)
		} else if v.IntValue, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "initval %d value", i)
		}
	}
	return vals, nil
}

func decodeStructs(r *reader) ([]Struct, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	structs := make([]Struct, count)
	for i := range structs {
		s := &structs[i]
		name, err := r.cstring()
		if err != nil {
			return nil, errors.Wrapf(err, "struct %d name", i)
		}
		s.Name = string(name)
		if s.Constructor, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "struct %d constructor", i)
		}
		if s.Destructor, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "struct %d destructor", i)
		}
		nrMembers, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "struct %d nr_members", i)
		}
		if s.Members, err = decodeVariables(r, nrMembers); err != nil {
			return nil, errors.Wrapf(err, "struct %d members", i)
		}
	}
	return structs, nil
}

func decodeLibraries(r *reader) ([]Library, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	libs := make([]Library, count)
	for i := range libs {
		lib := &libs[i]
		name, err := r.cstring()
		if err != nil {
			return nil, errors.Wrapf(err, "library %d name", i)
		}
		lib.Name = string(name)
		nrFuncs, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "library %d nr_functions", i)
		}
		lib.Functions = make([]HLLFunction, nrFuncs)
		for j := range lib.Functions {
			fn := &lib.Functions[j]
			fname, err := r.cstring()
			if err != nil {
				return nil, errors.Wrapf(err, "library %d function %d name", i, j)
			}
			fn.Name = string(fname)
			rt, err := r.u32()
			if err != nil {
				return nil, errors.Wrapf(err, "library %d function %d return type", i, j)
			}
			fn.ReturnType = DataType(rt)
			nrArgs, err := r.u32()
			if err != nil {
				return nil, errors.Wrapf(err, "library %d function %d nr_arguments", i, j)
			}
			fn.Arguments = make([]HLLArgument, nrArgs)
			for k := range fn.Arguments {
				arg := &fn.Arguments[k]
				aname, err := r.cstring()
				if err != nil {
					return nil, errors.Wrapf(err, "library %d function %d argument %d name", i, j, k)
				}
				arg.Name = string(aname)
				at, err := r.u32()
				if err != nil {
					return nil, errors.Wrapf(err, "library %d function %d argument %d type", i, j, k)
				}
				arg.Type = DataType(at)
			}
		}
	}
	return libs, nil
}

func decodeSwitches(r *reader) ([]Switch, error) {
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	switches := make([]Switch, count)
	for i := range switches {
		s := &switches[i]
		kind, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "switch %d case type", i)
		}
		s.CaseKind = SwitchCaseKind(kind)
		if s.DefaultAddress, err = r.u32(); err != nil {
			return nil, errors.Wrapf(err, "switch %d default address", i)
		}
		nrCases, err := r.u32()
		if err != nil {
			return nil, errors.Wrapf(err, "switch %d nr_cases", i)
		}
		s.Cases = make([]SwitchCase, nrCases)
		for j := range s.Cases {
			if s.Cases[j].Value, err = r.u32(); err != nil {
				return nil, errors.Wrapf(err, "switch %d case %d value", i, j)
			}
			if s.Cases[j].Address, err = r.u32(); err != nil {
				return nil, errors.Wrapf(err, "switch %d case %d address", i, j)
			}
		}
	}
	return switches, nil
}

func decodeFunctionTypes(r *reader) (int32, []FunctionType, error) {
	leading, err := r.u32()
	if err != nil {
		return 0, nil, err
	}
	count, err := r.u32()
	if err != nil {
		return 0, nil, err
	}
	types := make([]FunctionType, count)
	for i := range types {
		ft := &types[i]
		name, err := r.cstring()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d name", i)
		}
		ft.Name = string(name)
		rt, err := r.u32()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d return type", i)
		}
		ft.ReturnType = DataType(rt)
		if ft.StructType, err = r.u32(); err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d struct type", i)
		}
		if ft.NrArgs, err = r.u32(); err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d nr_arguments", i)
		}
		nrVars, err := r.u32()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d nr_variables", i)
		}
		if ft.Variables, err = decodeVariables(r, nrVars); err != nil {
			return 0, nil, errors.Wrapf(err, "function type %d variables", i)
		}
	}
	return leading, types, nil
}
