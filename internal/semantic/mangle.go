package semantic

// Symbol mangling:
//   free function f in package p  -> _Lp_f
//   method m on struct S in pkg p -> _Lp_S_m
//   builtin b                     -> _Lbuiltins_b

func mangleFunc(pkg, name string) string {
	return "_L" + pkg + "_" + name
}

func mangleMethod(pkg, structName, name string) string {
	return "_L" + pkg + "_" + structName + "_" + name
}

func mangleBuiltin(name string) string {
	return "_Lbuiltins_" + name
}
