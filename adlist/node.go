package adlist

type ListNode struct {
	prev  *ListNode
	next  *ListNode
	value interface{}
}

func (n *ListNode) NodeValue() interface{} {
	if n == nil {
		return nil
	}
	return n.value
}

func (n *ListNode) SetNodeValue(value interface{}) {
	n.value = value
}

func (n *ListNode) Next() *ListNode {
	return n.next
}

func (n *ListNode) Prev() *ListNode {
	return n.prev
}

// Iteration directions for GetIterator, Rewind and RewindTail.
const (
	AlStartHead = iota
	AlStartTail
)

type ListIter struct {
	next      *ListNode
	direction int
}

// Next returns the node the iterator is positioned on, or nil when the
// traversal is exhausted. The cursor steps off the returned node before
// the caller sees it, so deleting the returned node with DelNode keeps
// the iterator consistent. Deleting any other node while iterating is
// not supported.
func (iter *ListIter) Next() *ListNode {
	cur := iter.next
	if cur != nil {
		if iter.direction == AlStartHead {
			iter.next = cur.next
		} else {
			iter.next = cur.prev
		}
	}
	return cur
}
