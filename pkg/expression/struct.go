package expression

import (
	"github.com/expr-lang/expr/vm"
)

// File is the environment a skip filter is evaluated against.
type File struct {
	Path string
	Name string
	Dir  string
	Ext  string
	Size int64
}

type CompiledExpression struct {
	Text    string
	Program *vm.Program
}
