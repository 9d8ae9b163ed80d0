// hand_asm is test tooling: it takes a hand-assembled listing file and
// produces the raw binary image it describes, so 6502 test fixtures
// can be written and reviewed as hex listings instead of opaque byte
// arrays.
//
// Each significant line has the form:
//
//	XXXX OP A1 A2 ...
//
// where XXXX is a 4 hex digit address (used only to anchor the listing
// visually; bytes are appended to the output in line order regardless
// of address) and the remaining tokens are hex bytes. A trailing
// comment starting with a tab or "(*)" is ignored, as is any line that
// doesn't start with 4 hex digits.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")

var lineRE = regexp.MustCompile(`^[0-9A-Fa-f]{4}\s+(.*)$`)

func assemble(in *os.File) ([]byte, error) {
	output := make([]byte, *offset)

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rest := m[1]
		if i := strings.IndexByte(rest, '\t'); i >= 0 {
			rest = rest[:i]
		}
		if i := strings.Index(rest, "(*)"); i >= 0 {
			rest = rest[:i]
		}
		for _, tok := range strings.Fields(rest) {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, &lineError{line, text, err}
			}
			output = append(output, byte(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return output, nil
}

type lineError struct {
	line int
	text string
	err  error
}

func (e *lineError) Error() string {
	return strconv.Itoa(e.line) + ": " + e.text + ": " + e.err.Error()
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s <input> <output>", os.Args[0])
	}
	fn, out := flag.Args()[0], flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	defer in.Close()

	output, err := assemble(in)
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}

	if err := os.WriteFile(out, output, 0o644); err != nil {
		log.Fatalf("Can't write output %q - %v", out, err)
	}
}
