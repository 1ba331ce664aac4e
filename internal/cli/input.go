package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLine bounds a single maze row.
const maxLine = 1 << 20

// readRows reads maze rows from r, dropping line terminators and any trailing
// blank lines.
func readRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

// loadRows reads rows from the file named by args[0], or from stdin when no
// argument (or "-") is given. It returns a name for log messages.
func loadRows(stdin io.Reader, args []string) ([]string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		rows, err := readRows(stdin)
		return rows, "stdin", err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], err
	}
	defer f.Close()

	rows, err := readRows(f)
	return rows, args[0], err
}
