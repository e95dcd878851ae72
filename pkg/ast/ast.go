package ast

import "lox/interpreter-go/pkg/runtime"

type NodeType string

const (
	NodeLiteral        NodeType = "Literal"
	NodeGrouping       NodeType = "Grouping"
	NodeUnary          NodeType = "Unary"
	NodeBinary         NodeType = "Binary"
	NodeLogical        NodeType = "Logical"
	NodeVariable       NodeType = "Variable"
	NodeAssign         NodeType = "Assign"
	NodeExpressionStmt NodeType = "Expression"
	NodePrintStmt      NodeType = "Print"
	NodeVarStmt        NodeType = "Var"
	NodeBlockStmt      NodeType = "Block"
	NodeIfStmt         NodeType = "If"
	NodeProgram        NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. The unexported methods keep the variant sets closed.

type Expr interface {
	Node
	exprNode()
}

type exprMarker struct{}

func (exprMarker) exprNode() {}

type Stmt interface {
	Node
	stmtNode()
}

type stmtMarker struct{}

func (stmtMarker) stmtNode() {}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

type Literal struct {
	nodeImpl
	exprMarker

	Value runtime.Value `json:"value"`
}

func NewLiteral(value runtime.Value) *Literal {
	if value == nil {
		value = runtime.NilValue{}
	}
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value}
}

type Grouping struct {
	nodeImpl
	exprMarker

	Expression Expr `json:"expression"`
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{nodeImpl: newNodeImpl(NodeGrouping), Expression: expression}
}

type Unary struct {
	nodeImpl
	exprMarker

	Operator runtime.Token `json:"operator"`
	Right    Expr          `json:"right"`
}

func NewUnary(operator runtime.Token, right Expr) *Unary {
	return &Unary{nodeImpl: newNodeImpl(NodeUnary), Operator: operator, Right: right}
}

type Binary struct {
	nodeImpl
	exprMarker

	Left     Expr          `json:"left"`
	Operator runtime.Token `json:"operator"`
	Right    Expr          `json:"right"`
}

func NewBinary(left Expr, operator runtime.Token, right Expr) *Binary {
	return &Binary{nodeImpl: newNodeImpl(NodeBinary), Left: left, Operator: operator, Right: right}
}

// Logical is a short-circuiting `and`/`or`.
type Logical struct {
	nodeImpl
	exprMarker

	Left     Expr          `json:"left"`
	Operator runtime.Token `json:"operator"`
	Right    Expr          `json:"right"`
}

func NewLogical(left Expr, operator runtime.Token, right Expr) *Logical {
	return &Logical{nodeImpl: newNodeImpl(NodeLogical), Left: left, Operator: operator, Right: right}
}

type Variable struct {
	nodeImpl
	exprMarker

	Name runtime.Token `json:"name"`
}

func NewVariable(name runtime.Token) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

type Assign struct {
	nodeImpl
	exprMarker

	Name  runtime.Token `json:"name"`
	Value Expr          `json:"value"`
}

func NewAssign(name runtime.Token, value Expr) *Assign {
	return &Assign{nodeImpl: newNodeImpl(NodeAssign), Name: name, Value: value}
}

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

type ExpressionStmt struct {
	nodeImpl
	stmtMarker

	Expression Expr `json:"expression"`
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{nodeImpl: newNodeImpl(NodeExpressionStmt), Expression: expression}
}

type PrintStmt struct {
	nodeImpl
	stmtMarker

	Expression Expr `json:"expression"`
}

func NewPrintStmt(expression Expr) *PrintStmt {
	return &PrintStmt{nodeImpl: newNodeImpl(NodePrintStmt), Expression: expression}
}

type VarStmt struct {
	nodeImpl
	stmtMarker

	Name        runtime.Token `json:"name"`
	Initializer Expr          `json:"initializer,omitempty"`
}

func NewVarStmt(name runtime.Token, initializer Expr) *VarStmt {
	return &VarStmt{nodeImpl: newNodeImpl(NodeVarStmt), Name: name, Initializer: initializer}
}

type BlockStmt struct {
	nodeImpl
	stmtMarker

	Statements []Stmt `json:"statements"`
}

func NewBlockStmt(statements []Stmt) *BlockStmt {
	return &BlockStmt{nodeImpl: newNodeImpl(NodeBlockStmt), Statements: statements}
}

type IfStmt struct {
	nodeImpl
	stmtMarker

	Condition  Expr `json:"condition"`
	ThenBranch Stmt `json:"thenBranch"`
	ElseBranch Stmt `json:"elseBranch,omitempty"`
}

func NewIfStmt(condition Expr, thenBranch Stmt, elseBranch Stmt) *IfStmt {
	return &IfStmt{nodeImpl: newNodeImpl(NodeIfStmt), Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// Program is the root of a decoded document: an ordered statement list.
type Program struct {
	nodeImpl

	Statements []Stmt `json:"statements"`
}

func NewProgram(statements []Stmt) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}
