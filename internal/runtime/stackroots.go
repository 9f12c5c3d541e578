package runtime

// CollectRoots walks the frame chain starting at startBase — the frame of
// the function currently executing a safe point, whose own live set is
// described by the stack map recorded for startCallSite (the call-site id
// of that very safe-point call) — and returns every handle word found live
// across every enclosing caller.
//
// This is the fp-chain walk of the original pointer-chasing root scanner,
// ported to slice-index arithmetic: "read the word at address" becomes
// "read arena slot i of frame at base", and "follow the saved frame
// pointer" becomes "follow FrameArena.Parent". No raw address is ever
// materialized.
func CollectRoots(c *Context, startBase, startCallSite int) []uint64 {
	var roots []uint64
	base := startBase
	callSite := startCallSite

	for {
		if sm, ok := c.stackMaps.Lookup(callSite); ok {
			for _, slot := range sm {
				roots = append(roots, c.frames.Get(base, slot))
			}
		}
		parent, ok := c.frames.Parent(base)
		if !ok {
			break
		}
		callSite = c.frames.CallSite(base)
		base = parent
	}
	return roots
}
