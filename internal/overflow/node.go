package overflow

import "github.com/gostonefire/chainhashmap/internal/model"

// Node - One entry in a bucket chain. A node is owned either by its bucket (when it is the chain head) or by the
// node preceding it, and the contact is held by value so nothing outside the chain can change it.
type Node struct {
	key     string
	contact model.Contact
	next    *Node
}

// NewNode - Returns a pointer to a new unlinked Node holding contact under the contact name as key
func NewNode(contact model.Contact) *Node {
	return &Node{
		key:     contact.Name,
		contact: contact,
	}
}

// Key - Returns the key the node is stored under
func (N *Node) Key() string {
	return N.key
}

// Contact - Returns a copy of the contact held by the node
func (N *Node) Contact() model.Contact {
	return N.contact
}

// Replace - Replaces the contact held by the node, the node keeps its position in the chain.
// The key is not changed, callers only replace contacts stored under the same key.
func (N *Node) Replace(contact model.Contact) {
	N.contact = contact
}

// Next - Returns the next node in the chain or nil if this is the tail
func (N *Node) Next() *Node {
	return N.next
}

// Link - Links node as the successor of this node, it is only valid on the tail
func (N *Node) Link(node *Node) {
	N.next = node
}
