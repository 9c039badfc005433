package main

import (
	"fmt"
	"io"
)

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}
