package interpreter

import (
	"fortio.org/log"

	"skibidi/interpreter-go/pkg/ast"
)

// switchState tracks case traversal.
type switchState int

const (
	switchScanning switchState = iota
	switchMatched
	switchDone
)

// executeSwitchStatement evaluates the discriminant once and walks the cases.
// A break from any case body it dispatched is consumed here and never leaves
// the switch.
func (i *Interpreter) executeSwitchStatement(stmt *ast.SwitchStatement) (Completion, error) {
	value, err := i.evaluateExpression(stmt.Discriminant)
	if err != nil {
		return Completed, err
	}
	log.LogVf("switch on %d (%s)", value, i.switches)
	if i.switches == SwitchConventional {
		return i.executeConventionalSwitch(stmt, value)
	}
	return i.executeFaithfulSwitch(stmt, value)
}

// executeFaithfulSwitch: once a case matches, every later body runs
// (fallthrough). A default body runs whenever traversal reaches it, matched
// or not, and ends the traversal.
func (i *Interpreter) executeFaithfulSwitch(stmt *ast.SwitchStatement, value int64) (Completion, error) {
	state := switchScanning
	for _, c := range stmt.Cases {
		if state == switchDone {
			break
		}
		if c == nil {
			continue
		}
		if c.IsDefault() {
			state = switchDone
		} else if state == switchScanning {
			test, err := i.evaluateExpression(c.Test)
			if err != nil {
				return Completed, err
			}
			if test != value {
				continue
			}
			state = switchMatched
		}
		completion, err := i.executeStatement(c.Body)
		if err != nil {
			return Completed, err
		}
		if completion == BreakRequested {
			state = switchDone
		}
	}
	return Completed, nil
}

// executeConventionalSwitch enters at the first matching case, or at the
// default when nothing matched, and falls through from there.
func (i *Interpreter) executeConventionalSwitch(stmt *ast.SwitchStatement, value int64) (Completion, error) {
	start, fallback := -1, -1
	for idx, c := range stmt.Cases {
		if c == nil {
			continue
		}
		if c.IsDefault() {
			if fallback < 0 {
				fallback = idx
			}
			continue
		}
		test, err := i.evaluateExpression(c.Test)
		if err != nil {
			return Completed, err
		}
		if test == value {
			start = idx
			break
		}
	}
	if start < 0 {
		start = fallback
	}
	if start < 0 {
		return Completed, nil
	}
	for _, c := range stmt.Cases[start:] {
		if c == nil {
			continue
		}
		completion, err := i.executeStatement(c.Body)
		if err != nil {
			return Completed, err
		}
		if completion == BreakRequested {
			break
		}
	}
	return Completed, nil
}
