package main

import "fmt"

const version = "0.1.0"

func versionString() string {
	return fmt.Sprintf("schemer %s", version)
}
