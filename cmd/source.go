package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/smarthome-go/juno/juno"
)

// readSource loads a program and normalizes it to NFC so that spans count composed characters.
func readSource(path string) (juno.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return juno.Source{}, err
	}

	if !utf8.Valid(content) {
		return juno.Source{}, fmt.Errorf("File `%s` is not valid UTF-8", path)
	}

	return juno.Source{
		Filename: path,
		Program:  norm.NFC.String(string(content)),
	}, nil
}
