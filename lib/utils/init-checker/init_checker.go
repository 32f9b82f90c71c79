package initchecker

import "fmt"

// CheckInit accepts (name, value) pairs and panics on a nil dependency, so
// a miswired startup fails immediately instead of at first use.
func CheckInit(pairs ...interface{}) {
	for k := 0; k+1 < len(pairs); k += 2 {
		name, _ := pairs[k].(string)
		if pairs[k+1] == nil {
			panic(fmt.Sprintf("dependency %q is not initialized", name))
		}
	}
}
