package rustv0_test

import (
	"fmt"

	"github.com/rustv0/rustv0/rustv0"
)

func ExampleParse() {
	sym, suffix, err := rustv0.Parse("_RC5regex")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	root := sym.Path.(*rustv0.CrateRoot)
	fmt.Println(root.Name.Name, suffix == "")
	// Output: regex true
}
