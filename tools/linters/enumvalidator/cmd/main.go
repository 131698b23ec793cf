package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/FutureNHS/futurenhs-platform/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
