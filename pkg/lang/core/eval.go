package core

// Eval reduces v in env.  Symbols are looked up, S-expressions are reduced,
// and every other value evaluates to itself.
//
// Eval takes ownership of v and may modify it in place.
func Eval(env *Env, v Value) Value {
	switch v := v.(type) {
	case Symbol:
		return env.Get(string(v))

	case SExpr:
		return evalSExpr(env, v)
	}

	return v
}

func evalSExpr(env *Env, s SExpr) Value {
	// evaluate cells left to right; the first error wins
	for i, cell := range s {
		if s[i] = Eval(env, cell); IsError(s[i]) {
			return s[i]
		}
	}

	switch len(s) {
	case 0:
		return s
	case 1:
		return s[0]
	}

	fn, ok := s[0].(Function)
	if !ok {
		return Errorf(TypeMismatch,
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			s[0].Kind(), KindFunc)
	}

	return fn.Call(env, s[1:])
}

// Apply calls fn with args in env.  It is equivalent to evaluating an
// S-expression whose cells are fn followed by args.
func Apply(env *Env, fn Function, args ...Value) Value {
	return fn.Call(env, args)
}
