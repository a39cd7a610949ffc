// Package list implements the singly linked list drills: in-place reversal
// and intersection detection. Lists are built synthetically; there is no
// parsing path.
package list

// Node is a singly linked list node. The head owns the chain; operations that
// restructure a list take the head and return the new owning head.
type Node struct {
	Value int
	Next  *Node
}

// New builds a list from values in order and returns its head, or nil for no
// values.
func New(values ...int) *Node {
	var head, tail *Node
	for _, v := range values {
		n := &Node{Value: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// Values returns the list's values in order. A nil head yields nil.
func (n *Node) Values() []int {
	var values []int
	for cur := n; cur != nil; cur = cur.Next {
		values = append(values, cur.Value)
	}
	return values
}

// Len returns the number of nodes in the list.
func (n *Node) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}
	return count
}

// Reverse reverses the list in place and returns the new head. Ownership of
// the chain transfers in through head and back out through the return value;
// the old head becomes the tail.
//
// Postcondition: Reverse(nil) == nil; Reverse(Reverse(h)) yields the original order.
func Reverse(head *Node) *Node {
	var prev *Node
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}
	return prev
}

// Intersection returns the first node shared by both lists, or nil when the
// lists never converge. Uses two cursors that each restart at the other list's
// head upon reaching their own end, which equalizes traversal lengths: after
// at most len(a)+len(b) steps the cursors meet at the first shared node or
// both reach nil together.
func Intersection(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	pa, pb := a, b
	for pa != pb {
		if pa == nil {
			pa = b
		} else {
			pa = pa.Next
		}
		if pb == nil {
			pb = a
		} else {
			pb = pb.Next
		}
	}
	return pa
}
