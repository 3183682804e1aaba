// Package chain provides a lazy, type-changing composition chain.
//
// A chain is built from a seed value and extended one unary operation at a
// time. Each operation's output type may differ from its input type. Nothing
// runs until Execute is called, unless the chain was created with the
// Immediate option, in which case it runs synchronously after every
// composition.
//
// Composition consumes the source handle: the returned chain owns the entire
// step graph and the old handle must not be used again.
//
//	c := chain.Then(chain.New(5), chain.Pure(func(x int) int { return x + 10 }))
//	c = chain.Then(c, chain.Pure(func(x int) int { return x * x }))
//	if err := c.Execute(); err != nil { ... }
//	v, _ := c.Result() // 225
//
// Appending an effect-only operation switches the chain into its terminal
// state, a VoidChain, which accepts only further zero-argument effects:
//
//	v := chain.ThenDo(c, chain.Effect(func(x int) { fmt.Println(x) }))
//	v = v.Then(chain.Do(func() { fmt.Println("done") }))
//	_ = v.Execute()
//
// Every step executes at most once: re-running a chain re-emits nothing and
// recomputes nothing. Steps complete in strict root-to-tip order, and an
// error from any step aborts the run while already-completed steps keep
// their results.
package chain
