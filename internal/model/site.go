// Package model defines the data structures shared by the search engine,
// its adapters and the UI.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Site is one buffer position plus the candidate bytes to try there.
type Site struct {
	Line     int // 1-indexed
	Column   int
	Alphabet []byte
}

// String renders the site in configuration-file syntax.
func (s Site) String() string {
	return fmt.Sprintf("%d:%d - %s", s.Line, s.Column, s.Alphabet)
}

// Sites is an ordered site list. The first site is the slowest-changing
// digit of the search odometer, the last one the fastest.
type Sites []Site

// Sizes returns the alphabet size of every site in order.
func (ss Sites) Sizes() []int {
	sizes := make([]int, len(ss))
	for i, s := range ss {
		sizes[i] = len(s.Alphabet)
	}

	return sizes
}

// MaxLine returns the highest line referenced by any site, or 0 when empty.
func (ss Sites) MaxLine() int {
	maxLine := 0
	for _, s := range ss {
		if s.Line > maxLine {
			maxLine = s.Line
		}
	}

	return maxLine
}

// LineOffsets maps a 1-indexed line number to its anchor offset in a buffer.
//
// Line 1 is anchored at offset 0. Line n > 1 is anchored at the newline that
// terminates line n-1, so column c of line n > 1 addresses byte
// offset(n) + c where c = 1 is the first character after the newline.
type LineOffsets map[int]int

// State holds one alphabet index per site.
type State []int

// Clone returns a copy of the state that survives further enumeration.
func (st State) Clone() State {
	out := make(State, len(st))
	copy(out, st)

	return out
}

// Assignment is the character a state places at one site.
type Assignment struct {
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	Char   string `yaml:"char"`
}

// String renders the assignment the way the configuration file does.
func (a Assignment) String() string {
	return fmt.Sprintf("%d:%d - %s", a.Line, a.Column, a.Char)
}

// ConfigWarning describes a site configuration line that was skipped.
type ConfigWarning struct {
	Path   Path
	Line   int
	Text   string
	Reason string
}

// String renders the warning as "path:line reason; ignored".
func (w ConfigWarning) String() string {
	return fmt.Sprintf("%s:%d %s; ignored", w.Path, w.Line, w.Reason)
}
