// Package parser compiles DSL source text into the ir.Operation program the
// vm package evaluates. Grounded on original_source/src/pbcore/parse.rs.
package parser

import (
	"strings"

	"github.com/deepteams/pixelscript/ir"
)

// Parse compiles code into a program starting in initial space. It never
// returns a parse-fatal error: rows it cannot make sense of are recorded in
// the returned OpError slice and simply contribute no operation, so a
// partially-wrong program still runs to the extent it can be understood.
func Parse(code string, initial ir.Space) ([]ir.Operation, []ir.OpError) {
	var program []ir.Operation
	var errs []ir.OpError
	labels := make(map[string]int)

	program = append(program, ir.Operation{Kind: ir.OpSpace, Space: initial})

	space := initial
	var pending []string
	line := 0

	for _, fullRow := range strings.Split(code, "\n") {
		line++
		for _, row := range strings.Split(fullRow, ";") {
			row = strings.TrimSpace(strings.ToLower(row))
			switch {
			case row == "":
				continue
			case strings.HasPrefix(row, "#"):
				continue
			case strings.HasSuffix(row, "\\"):
				pending = append(pending, fields(strings.TrimSuffix(row, "\\"))...)
				continue
			case strings.HasPrefix(row, ":"):
				labels[strings.TrimPrefix(row, ":")] = len(program)
			default:
				pending = append(pending, fields(row)...)
			}

			if len(pending) == 0 {
				continue
			}
			items := pending
			pending = nil

			op, err, ok := parseOperation(items, &space, line)
			if ok {
				program = append(program, op)
			} else {
				errs = append(errs, err)
			}
		}
	}

	program, labelErrs := resolveLabels(program, labels)
	errs = append(errs, labelErrs...)

	return program, errs
}

func fields(row string) []string {
	return strings.Fields(row)
}

// parseOperation tries each grammar in the documented precedence order —
// Process, Space, If, Goto, Swap — and returns the first Ok result found.
// If none succeed, it returns the first Partial error seen, falling back to
// Unknown.
func parseOperation(items []string, space *ir.Space, line int) (ir.Operation, ir.OpError, bool) {
	type attempt struct {
		op  ir.Operation
		err ir.OpError
		ok  bool
	}
	attempts := [5]attempt{}
	attempts[0].op, attempts[0].err, attempts[0].ok = parseProcess(items, *space, line)
	attempts[1].op, attempts[1].err, attempts[1].ok = parseSpace(items, space, line)
	attempts[2].op, attempts[2].err, attempts[2].ok = parseIf(items, space, line)
	attempts[3].op, attempts[3].err, attempts[3].ok = parseGoto(items, line)
	attempts[4].op, attempts[4].err, attempts[4].ok = parseSwap(items, *space, line)

	for _, a := range attempts {
		if a.ok {
			return a.op, ir.OpError{}, true
		}
	}
	for _, a := range attempts {
		if a.err.Kind == ir.Partial {
			return ir.Operation{}, a.err, false
		}
	}
	return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
}

// parseProcess matches "<target> <op> <source>".
func parseProcess(items []string, space ir.Space, line int) (ir.Operation, ir.OpError, bool) {
	if len(items) != 3 {
		return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
	}
	tar, ok := mutableOperand(items[0], space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid target operand"}, false
	}
	op, ok := operatorToken(items[1])
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid operator"}, false
	}
	src, ok := sourceOperand(items[2], space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid source operand"}, false
	}
	return ir.Operation{Kind: ir.OpProcess, Target: tar, Op: op, Source: src, Line: line}, ir.OpError{}, true
}

// parseSpace matches a single bare space keyword and, on success, updates
// the parser's running current-space state.
func parseSpace(items []string, space *ir.Space, line int) (ir.Operation, ir.OpError, bool) {
	if len(items) != 1 {
		return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
	}
	s, ok := spaceToken(items[0])
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid color space"}, false
	}
	*space = s
	return ir.Operation{Kind: ir.OpSpace, Space: s, Line: line}, ir.OpError{}, true
}

// parseIf matches "if <left> <cmp> <right> <rest...>", recursing into the
// tail to produce the Then operation. A failure in the tail propagates
// verbatim as this grammar's own failure.
func parseIf(items []string, space *ir.Space, line int) (ir.Operation, ir.OpError, bool) {
	if len(items) < 5 || items[0] != "if" {
		return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
	}
	left, ok := sourceOperand(items[1], *space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid if left operand"}, false
	}
	cmp, ok := comparisonToken(items[2])
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid if comparison"}, false
	}
	right, ok := sourceOperand(items[3], *space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid if right operand"}, false
	}
	then, err, ok := parseOperation(items[4:], space, line)
	if !ok {
		return ir.Operation{}, err, false
	}
	thenCopy := then
	return ir.Operation{Kind: ir.OpIf, Left: left, Cmp: cmp, Right: right, Then: &thenCopy, Line: line}, ir.OpError{}, true
}

// parseGoto matches "goto <label>" or "jmp <label>", leaving the label
// unresolved until resolveLabels runs its second pass over the whole
// program.
func parseGoto(items []string, line int) (ir.Operation, ir.OpError, bool) {
	if len(items) != 2 || (items[0] != "goto" && items[0] != "jmp") {
		return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
	}
	return ir.Operation{Kind: ir.OpGotoTmp, Label: items[1], Line: line}, ir.OpError{}, true
}

// parseSwap matches "swap <t1> <t2>".
func parseSwap(items []string, space ir.Space, line int) (ir.Operation, ir.OpError, bool) {
	if len(items) != 3 || items[0] != "swap" {
		return ir.Operation{}, ir.OpError{Kind: ir.Unknown, Line: line}, false
	}
	t1, ok := mutableOperand(items[1], space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid swap operand"}, false
	}
	t2, ok := mutableOperand(items[2], space)
	if !ok {
		return ir.Operation{}, ir.OpError{Kind: ir.Partial, Line: line, Details: "invalid swap operand"}, false
	}
	return ir.Operation{Kind: ir.OpSwap, T1: t1, T2: t2, Line: line}, ir.OpError{}, true
}

// resolveLabels maps every GotoTmp node's label to its target instruction
// index, recursing into If.Then chains. A label with no matching :label row
// is dropped — the goto becomes a no-op at evaluation time — and reported
// as a Partial error carrying the line the goto was parsed on.
func resolveLabels(program []ir.Operation, labels map[string]int) ([]ir.Operation, []ir.OpError) {
	var errs []ir.OpError
	out := make([]ir.Operation, 0, len(program))
	for _, op := range program {
		out = append(out, resolveLabelsIn(op, labels, &errs))
	}
	return out, errs
}

func resolveLabelsIn(op ir.Operation, labels map[string]int, errs *[]ir.OpError) ir.Operation {
	switch op.Kind {
	case ir.OpGotoTmp:
		idx, ok := labels[op.Label]
		if !ok {
			*errs = append(*errs, ir.OpError{Kind: ir.Partial, Line: op.Line, Details: "unresolved goto label " + op.Label})
			return ir.Operation{Kind: ir.OpNop, Line: op.Line}
		}
		return ir.Operation{Kind: ir.OpGoto, GotoIndex: idx, Line: op.Line}
	case ir.OpIf:
		if op.Then != nil {
			resolved := resolveLabelsIn(*op.Then, labels, errs)
			op.Then = &resolved
		}
		return op
	default:
		return op
	}
}
