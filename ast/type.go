package ast

// NodeType represents the type of a syntax tree node
type NodeType uint8

// Node types
const (
	NodeTypeAtom NodeType = iota + 1
	NodeTypeList
)

var nodeTypeNames = map[NodeType]string{
	NodeTypeAtom: "atom",
	NodeTypeList: "list",
}

func (nt NodeType) String() string {
	if v, ok := nodeTypeNames[nt]; ok {
		return v
	}
	return ""
}

// AtomKind represents the kind of value an atom holds
type AtomKind uint8

// Atom kinds
const (
	AtomKindSymbol AtomKind = iota + 1
	AtomKindNumber
	AtomKindString
)

var atomKindNames = map[AtomKind]string{
	AtomKindSymbol: "symbol",
	AtomKindNumber: "number",
	AtomKindString: "string",
}

func (ak AtomKind) String() string {
	if v, ok := atomKindNames[ak]; ok {
		return v
	}
	return ""
}
