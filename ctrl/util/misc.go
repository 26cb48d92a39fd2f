package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func HasArg(name string) bool {
	return hasArgIn(os.Args[1:], name)
}

func hasArgIn(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

// ArgValue finds the value given for an option, written either as "--name value" or "--name=value". An option given
// as the last argument, with nothing after it, is an error.
func ArgValue(args []string, name string) (string, bool, error) {
	for i, a := range args {
		if a == name {
			if i+1 >= len(args) {
				return "", false, fmt.Errorf("missing value for %s", name)
			}
			return args[i+1], true, nil
		}
		if strings.HasPrefix(a, name+"=") {
			return a[len(name)+1:], true, nil
		}
	}
	return "", false, nil
}

func ArgInt(args []string, name string, def int) (int, error) {
	s, ok, err := ArgValue(args, name)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return v, nil
}

func ArgInt64(args []string, name string, def int64) (int64, error) {
	s, ok, err := ArgValue(args, name)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return v, nil
}

func ArgFloat(args []string, name string, def float64) (float64, error) {
	s, ok, err := ArgValue(args, name)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return v, nil
}

func ArgDuration(args []string, name string, def time.Duration) (time.Duration, error) {
	s, ok, err := ArgValue(args, name)
	if err != nil || !ok {
		return def, err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return v, nil
}
