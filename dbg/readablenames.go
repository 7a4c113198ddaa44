package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary comparable values, usually segments, into random
// readable names, so that "BraveOtter" can be told apart from "CalmHeron" in
// debug output much more easily than two sets of coordinates. It leaks memory
// but generates the names lazily, so it's not a problem unless you're actually
// using it.

var (
	mu    sync.Mutex
	memo  map[interface{}]string
	title = cases.Title(language.English)
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name panics if obj is not comparable.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "Ø"
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}
