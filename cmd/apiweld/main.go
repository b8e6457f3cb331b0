// Command apiweld resolves every $ref in a multi-file schema document tree
// and emits one self-contained document.
package main

import "github.com/apiweld/apiweld/internal/cli"

func main() {
	cli.Execute()
}
