package expression

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Compile compiles skip filter expressions against the File environment.
func Compile(filters []string) ([]CompiledExpression, error) {
	compiled := make([]CompiledExpression, 0, len(filters))

	for _, filter := range filters {
		program, err := expr.Compile(filter, expr.Env(File{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile expression %q: %w", filter, err)
		}

		compiled = append(compiled, CompiledExpression{Text: filter, Program: program})
	}

	return compiled, nil
}

func CheckFileSingleMatch(f *File, expressions []CompiledExpression) (bool, error) {
	match, _, err := CheckFileSingleMatchWithReason(f, expressions)
	return match, err
}

func CheckFileSingleMatchWithReason(f *File, expressions []CompiledExpression) (bool, string, error) {
	for _, expression := range expressions {
		result, err := expr.Run(expression.Program, *f)
		if err != nil {
			return false, "", fmt.Errorf("check expression: %w", err)
		}

		expResult, ok := result.(bool)
		if !ok {
			return false, "", fmt.Errorf("type assert expression result: %q", expression.Text)
		}

		if expResult {
			return true, expression.Text, nil
		}
	}

	return false, "", nil
}
