package driver

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// decodeNode turns one generic document object into an AST node. The object
// shape mirrors the json tags in pkg/ast: a "type" discriminator plus the
// node's fields.
func decodeNode(node map[string]any) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeProgram:
		stmts, err := decodeStatements(node["statements"])
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(stmts), nil
	case ast.NodeLiteral:
		val, err := runtime.FromGo(node["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(val), nil
	case ast.NodeGrouping:
		inner, err := decodeExprField(node, "expression")
		if err != nil {
			return nil, err
		}
		return ast.NewGrouping(inner), nil
	case ast.NodeUnary:
		op, err := decodeTokenField(node, "operator")
		if err != nil {
			return nil, err
		}
		right, err := decodeExprField(node, "right")
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	case ast.NodeBinary, ast.NodeLogical:
		left, err := decodeExprField(node, "left")
		if err != nil {
			return nil, err
		}
		op, err := decodeTokenField(node, "operator")
		if err != nil {
			return nil, err
		}
		right, err := decodeExprField(node, "right")
		if err != nil {
			return nil, err
		}
		if typ == string(ast.NodeLogical) {
			return ast.NewLogical(left, op, right), nil
		}
		return ast.NewBinary(left, op, right), nil
	case ast.NodeVariable:
		name, err := decodeTokenField(node, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewVariable(name), nil
	case ast.NodeAssign:
		name, err := decodeTokenField(node, "name")
		if err != nil {
			return nil, err
		}
		value, err := decodeExprField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(name, value), nil
	case ast.NodeExpressionStmt:
		expr, err := decodeExprField(node, "expression")
		if err != nil {
			return nil, err
		}
		return ast.NewExpressionStmt(expr), nil
	case ast.NodePrintStmt:
		expr, err := decodeExprField(node, "expression")
		if err != nil {
			return nil, err
		}
		return ast.NewPrintStmt(expr), nil
	case ast.NodeVarStmt:
		name, err := decodeTokenField(node, "name")
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if raw, ok := node["initializer"]; ok && raw != nil {
			init, err = decodeExprField(node, "initializer")
			if err != nil {
				return nil, err
			}
		}
		return ast.NewVarStmt(name, init), nil
	case ast.NodeBlockStmt:
		stmts, err := decodeStatements(node["statements"])
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStmt(stmts), nil
	case ast.NodeIfStmt:
		cond, err := decodeExprField(node, "condition")
		if err != nil {
			return nil, err
		}
		thenBranch, err := decodeStmtField(node, "thenBranch")
		if err != nil {
			return nil, err
		}
		var elseBranch ast.Stmt
		if raw, ok := node["elseBranch"]; ok && raw != nil {
			elseBranch, err = decodeStmtField(node, "elseBranch")
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfStmt(cond, thenBranch, elseBranch), nil
	case "":
		return nil, fmt.Errorf("node is missing its type")
	default:
		return nil, fmt.Errorf("unsupported node type %q", typ)
	}
}

func decodeExpr(raw any) (ast.Expr, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected expression object, found %T", raw)
	}
	node, err := decodeNode(obj)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expr)
	if !ok {
		return nil, fmt.Errorf("%s is not an expression", node.NodeType())
	}
	return expr, nil
}

func decodeStmt(raw any) (ast.Stmt, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected statement object, found %T", raw)
	}
	node, err := decodeNode(obj)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Stmt)
	if !ok {
		return nil, fmt.Errorf("%s is not a statement", node.NodeType())
	}
	return stmt, nil
}

func decodeStatements(raw any) ([]ast.Stmt, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected statement list, found %T", raw)
	}
	stmts := make([]ast.Stmt, 0, len(items))
	for idx, item := range items {
		stmt, err := decodeStmt(item)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", idx, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeExprField(node map[string]any, field string) (ast.Expr, error) {
	raw, ok := node[field]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%v is missing %s", node["type"], field)
	}
	expr, err := decodeExpr(raw)
	if err != nil {
		return nil, fmt.Errorf("%v.%s: %w", node["type"], field, err)
	}
	return expr, nil
}

func decodeStmtField(node map[string]any, field string) (ast.Stmt, error) {
	raw, ok := node[field]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%v is missing %s", node["type"], field)
	}
	stmt, err := decodeStmt(raw)
	if err != nil {
		return nil, fmt.Errorf("%v.%s: %w", node["type"], field, err)
	}
	return stmt, nil
}

func decodeTokenField(node map[string]any, field string) (runtime.Token, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return runtime.Token{}, fmt.Errorf("%v is missing token %s", node["type"], field)
	}
	tok, err := decodeToken(raw)
	if err != nil {
		return runtime.Token{}, fmt.Errorf("%v.%s: %w", node["type"], field, err)
	}
	return tok, nil
}

func decodeToken(raw map[string]any) (runtime.Token, error) {
	name, _ := raw["type"].(string)
	typ, ok := runtime.LookupTokenType(name)
	if !ok {
		return runtime.Token{}, fmt.Errorf("unknown token type %q", name)
	}
	lexeme, _ := raw["lexeme"].(string)
	line, err := intValue(raw["line"])
	if err != nil {
		return runtime.Token{}, fmt.Errorf("token line: %w", err)
	}
	tok := runtime.Token{Type: typ, Lexeme: lexeme, Line: line}
	if lit, ok := raw["literal"]; ok && lit != nil {
		val, err := runtime.FromGo(lit)
		if err != nil {
			return runtime.Token{}, fmt.Errorf("token literal: %w", err)
		}
		tok.Literal = val
	}
	return tok, nil
}

func intValue(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected integer, found %T", raw)
	}
}
