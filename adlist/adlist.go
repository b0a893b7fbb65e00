package adlist

// List is a generic doubly linked list. Node values are opaque to the
// container; the optional dup, free and match methods tell it how to
// copy, destroy and compare them.
type List struct {
	head, tail *ListNode
	dup        func(interface{}) interface{}
	free       func(interface{})
	match      func(value interface{}, key interface{}) bool
	len        int
}

func Create() *List {
	return new(List)
}

func (l *List) SetFreeMethod(fn func(interface{})) {
	l.free = fn
}

func (l *List) SetMatchMethod(fn func(interface{}, interface{}) bool) {
	l.match = fn
}

func (l *List) SetDupMethod(fn func(interface{}) interface{}) {
	l.dup = fn
}

func (l *List) Len() int {
	return l.len
}

func (l *List) AddNodeHead(value interface{}) *List {
	node := &ListNode{
		prev:  nil,
		next:  nil,
		value: value,
	}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}

	l.len++
	return l
}

func (l *List) AddNodeTail(value interface{}) *List {
	node := &ListNode{
		prev:  nil,
		next:  nil,
		value: value,
	}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}

	l.len++
	return l
}

// InsertNode splices a new node holding value right after oldNode when
// after is true, right before it otherwise. oldNode must belong to this
// list; that is not validated.
func (l *List) InsertNode(oldNode *ListNode, value interface{}, after bool) *List {
	node := &ListNode{value: value}
	if after {
		node.prev = oldNode
		node.next = oldNode.next
		if l.tail == oldNode {
			l.tail = node
		}
	} else {
		node.next = oldNode
		node.prev = oldNode.prev
		if l.head == oldNode {
			l.head = node
		}
	}
	if node.prev != nil {
		node.prev.next = node
	}
	if node.next != nil {
		node.next.prev = node
	}

	l.len++
	return l
}

// DelNode unlinks node and runs the free method, if set, on its value.
// The caller must not use node afterwards.
func (l *List) DelNode(node *ListNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	if l.free != nil {
		l.free(node.value)
	}
	node.prev = nil
	node.next = nil
	node.value = nil
	l.len--
}

// Empty removes every node without touching the list header. The free
// method, if set, runs on each value. The list stays valid and
// reusable, its methods untouched.
func (l *List) Empty() {
	current := l.head
	for i := l.len; i > 0; i-- {
		next := current.next
		if l.free != nil {
			l.free(current.value)
		}
		current.prev = nil
		current.next = nil
		current.value = nil
		current = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Release empties the list. The header itself is reclaimed by the GC;
// the method mirrors the create/release pairing of the original
// allocator-managed API.
func (l *List) Release() {
	l.Empty()
}

func (l *List) First() *ListNode {
	return l.head
}

func (l *List) Last() *ListNode {
	return l.tail
}

func (l *List) GetIterator(direction int) *ListIter {
	iter := new(ListIter)
	if direction == AlStartHead {
		iter.next = l.head
	} else {
		iter.next = l.tail
	}
	iter.direction = direction
	return iter
}

// Rewind points iter at the list head for a head-to-tail pass. Meant
// for iterators the caller owns, typically on the stack.
func (l *List) Rewind(iter *ListIter) {
	iter.next = l.head
	iter.direction = AlStartHead
}

func (l *List) RewindTail(iter *ListIter) {
	iter.next = l.tail
	iter.direction = AlStartTail
}

// ReleaseIterator keeps the GetIterator/release pairing of the original
// API; iterator memory is managed by the GC.
func ReleaseIterator(_ *ListIter) {}

// Dup copies the whole list. Values are copied with the dup method when
// one is set, otherwise the copy shares the original value handles. A
// nil result from the dup method aborts the copy: the partial list is
// released and Dup returns nil. The original is never modified.
func (l *List) Dup() *List {
	cp := Create()
	cp.dup = l.dup
	cp.free = l.free
	cp.match = l.match

	var iter ListIter
	l.Rewind(&iter)
	for node := iter.Next(); node != nil; node = iter.Next() {
		value := node.value
		if cp.dup != nil {
			if value = cp.dup(node.value); value == nil {
				cp.Release()
				return nil
			}
		}
		cp.AddNodeTail(value)
	}
	return cp
}

// SearchKey returns the first node whose value matches key, scanning
// head to tail, or nil when nothing matches. Matching uses the match
// method when one is set, otherwise plain interface equality, which for
// pointer handles is pointer identity.
func (l *List) SearchKey(key interface{}) *ListNode {
	var iter ListIter
	l.Rewind(&iter)
	for node := iter.Next(); node != nil; node = iter.Next() {
		if l.match != nil {
			if l.match(node.value, key) {
				return node
			}
		} else if key == node.value {
			return node
		}
	}
	return nil
}

// Index returns the node at the given zero-based index counting from
// the head. A negative index counts from the tail, -1 being the tail
// itself. Returns nil when the index is out of range.
func (l *List) Index(index int) *ListNode {
	var n *ListNode
	if index < 0 {
		index = (-index) - 1
		n = l.tail
		for ; index > 0 && n != nil; index-- {
			n = n.prev
		}
	} else {
		n = l.head
		for ; index > 0 && n != nil; index-- {
			n = n.next
		}
	}
	return n
}

// Rotate detaches the tail node and reinserts it as the new head.
// No-op on lists of length 0 or 1.
func (l *List) Rotate() {
	if l.len <= 1 {
		return
	}

	tail := l.tail
	l.tail = tail.prev
	l.tail.next = nil

	l.head.prev = tail
	tail.prev = nil
	tail.next = l.head
	l.head = tail
}

// Join appends every node of o to the end of l in O(1) by relinking the
// boundary pointers. o is left empty but stays a valid list with its
// methods untouched; ownership of the moved values passes to l.
func (l *List) Join(o *List) {
	if o.head != nil {
		o.head.prev = l.tail
	}

	if l.tail != nil {
		l.tail.next = o.head
	} else {
		l.head = o.head
	}

	if o.tail != nil {
		l.tail = o.tail
	}
	l.len += o.len

	o.head = nil
	o.tail = nil
	o.len = 0
}
