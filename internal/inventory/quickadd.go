package inventory

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mesh-intelligence/hutch/internal/sqlite"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

// sizeSuffix splits a quickadd line into a name and a trailing size code.
// Lines without a recognized suffix are all name, size S.
var sizeSuffix = regexp.MustCompile(`^(.*?)\s+([SMLX])$`)

// ParseQuickAddLine parses one `<name> [<size>]` input line.
func ParseQuickAddLine(line string) (name string, size types.Size) {
	line = strings.TrimSpace(line)
	if m := sizeSuffix.FindStringSubmatch(line); m != nil {
		return m[1], types.Size(m[2])
	}
	return line, types.SizeSmall
}

// Ingestor consumes a newline-delimited stream of `<name> [<size>]` entries
// and adds one item per line to a fixed target. It has two states, reading
// and done; done is reached at end of input and is terminal.
type Ingestor struct {
	store  *sqlite.Store
	loc    types.Location
	bin    *int // fixed bin for every line, or nil to auto-allocate per line
	prompt string

	out  io.Writer
	errw io.Writer
}

// NewIngestor builds an ingestor targeting loc, or loc/bin when bin is
// non-nil. Results go to out, skipped-line warnings to errw.
func NewIngestor(store *sqlite.Store, loc types.Location, bin *int, out, errw io.Writer) *Ingestor {
	prompt := loc.Name
	if bin != nil {
		prompt = fmt.Sprintf("%s/%d", loc.Name, *bin)
	}
	return &Ingestor{
		store:  store,
		loc:    loc,
		bin:    bin,
		prompt: prompt + "> ",
		out:    out,
		errw:   errw,
	}
}

// Run reads lines from in until end of input. Blank lines are skipped;
// lines that fail validation print a one-line warning and ingestion
// continues. Returns the number of items added.
func (ing *Ingestor) Run(in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	added := 0

	for {
		fmt.Fprint(ing.out, ing.prompt)
		if !scanner.Scan() {
			// End of input: the done state.
			fmt.Fprintln(ing.out)
			break
		}

		name, size := ParseQuickAddLine(scanner.Text())
		if name == "" {
			continue
		}

		item, err := AddItem(ing.store, ing.loc, ing.bin, name, size)
		if err != nil {
			fmt.Fprintf(ing.errw, "skipped %q: %v\n", name, err)
			continue
		}

		fmt.Fprintln(ing.out, item)
		added++
	}

	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read input: %w", err)
	}
	return added, nil
}
