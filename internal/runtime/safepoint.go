package runtime

// CheckYield is the cooperative safe point every loop back-edge and every
// call compiles one of: if the collector's policy says so, it walks the
// frame chain from (base, callSite) — the currently executing frame and the
// call-site id of this very safe point — and runs a collection over the
// roots it finds.
//
// base/callSite are supplied by the Backend emitting the call, since only
// the generated closure itself knows which frame and which call site it
// is; CheckYield is the one runtime helper that takes them, for exactly
// that reason.
func (c *Context) CheckYield(base, callSite int) {
	if !c.ShouldCollect() {
		return
	}
	roots := CollectRoots(c, base, callSite)
	c.Collect(roots)
}
