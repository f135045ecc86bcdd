// Package host declares the capability contracts of the surrounding host
// environment that debughost consumes but does not implement. The project
// hierarchy lives on the host side; debughost only calls across this
// boundary, so the contracts are declared here to pin down the shape of
// the collaboration.
package host

// NodeID identifies a node in the host's project hierarchy.
type NodeID uint32

// AddItemOp selects how an item is added to the hierarchy.
type AddItemOp int

const (
	// AddItemCopy copies an existing file into the project.
	AddItemCopy AddItemOp = iota
	// AddItemOpen links an existing file into the project in place.
	AddItemOpen
	// AddItemRunWizard instantiates a template through the host wizard.
	AddItemRunWizard
)

// AddItemResult reports the outcome of an add-item request.
type AddItemResult int

const (
	// AddItemSuccess means the item was added.
	AddItemSuccess AddItemResult = iota
	// AddItemCancel means the user cancelled the operation.
	AddItemCancel
	// AddItemAbort means the host aborted the operation.
	AddItemAbort
)

// Hierarchy is the host's project tree. Implementations live in the host
// environment; debughost never provides one.
type Hierarchy interface {
	// AddItem adds an item to the hierarchy at the given path and returns
	// the outcome together with the resulting path.
	AddItem(path string, op AddItemOp) (AddItemResult, string, error)

	// FindNode locates a hierarchy node by its path.
	FindNode(path string) (NodeID, error)
}
