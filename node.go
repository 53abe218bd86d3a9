package forwardlist

// node is a single cell of the chain, owned by the next link of its
// predecessor (another node or the list's sentinel).
type node[T any] struct {
	next  *node[T]
	value T
}
