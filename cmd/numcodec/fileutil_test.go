package main

import (
	"os"
	"strconv"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
