package set

import (
	"fmt"
	"io"
	"strings"
)

// Checks the elements about to be assigned to the path variable name, writing
// a warning to w for each element that is not a usable directory. Elements
// that are not rooted, or that are already in existing, are accepted without
// looking at the filesystem.
//
// It reports whether the assignment may go ahead: either no element was
// given, or at least one element was accepted.
func checkPaths(w io.Writer, cmd, name string, values, existing []string) bool {
	anySuccess := false
	for _, dir := range values {
		if !isRooted(dir) || contains(existing, dir) {
			anySuccess = true
			continue
		}
		err := checkDir(dir)
		if err == nil {
			anySuccess = true
			continue
		}
		fmt.Fprintf(w, "%s: Warning: $%s entry \"%s\" is not valid (%v)\n",
			cmd, name, dir, err)
		if _, rest, ok := strings.Cut(dir, ":"); ok && rest != "" {
			fmt.Fprintf(w, "%s: Did you mean 'set %s $%s %s'?\n", cmd, name, name, rest)
		}
	}
	return len(values) == 0 || anySuccess
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
