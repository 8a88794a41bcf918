package kwargs

// Pack links args, in order, behind a fresh empty carrier and returns that
// carrier as the chain head. With no arguments the head is the whole chain.
// Nil entries are skipped, so optional arguments can be passed through
// unconditionally.
//
// Pack and a streamed a.Append(b).Append(c) produce the same forward order and
// therefore the same resolved lookup.
func Pack[V any](args ...*Arg[V]) *Arg[V] {
	head := Empty[V]()
	for _, a := range args {
		head.Append(a)
	}
	return head
}
