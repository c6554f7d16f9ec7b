// Package binfile reads DCPU-16 memory images.
//
// Two formats are understood: raw binary images of little-endian 16-bit
// words, and text dumps as written by cpu.Memory.Dump.
package binfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/dcpu16/cpu"
)

// DUMP_WORDS_PER_LINE is the default dump line width.
const DUMP_WORDS_PER_LINE = cpu.DUMP_WORDS_PER_LINE

var dumpWord = regexp.MustCompile(`(?i)[0-9a-f]{4}`)

// Read decodes a binary image of little-endian words.
func Read(r io.Reader) (words []cpu.Word, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Read")
	}

	if len(data)%2 != 0 {
		return nil, errors.Errorf("Read: odd image length %d", len(data))
	}

	words = make([]cpu.Word, len(data)/2)
	err = binary.Read(bytes.NewReader(data), binary.LittleEndian, words)
	if err != nil {
		return nil, errors.Wrap(err, "Read")
	}

	return
}

// ReadFile decodes the binary image at path.
func ReadFile(path string) (words []cpu.Word, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadFile")
	}
	defer f.Close()

	words, err = Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadFile %v", path)
	}

	return
}

// ParseDump decodes a text dump. Each non-blank line holds an address
// followed by wordsPerLine words, all as four hex digits. Only the last
// line may hold fewer words. The address is ignored, so words are
// returned in line order.
func ParseDump(r io.Reader, wordsPerLine int) (words []cpu.Word, err error) {
	if wordsPerLine <= 0 {
		wordsPerLine = DUMP_WORDS_PER_LINE
	}

	var short string
	var shortLineno int

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if len(short) != 0 {
			return nil, errors.Errorf("invalid dump %q on line %d", short, shortLineno)
		}

		groups := dumpWord.FindAllString(line, -1)
		switch {
		case len(groups) == wordsPerLine+1:
		case len(groups) > 1 && len(groups) < wordsPerLine+1:
			short, shortLineno = line, lineno
		default:
			return nil, errors.Errorf("invalid dump %q on line %d", line, lineno)
		}

		for _, group := range groups[1:] {
			value, _ := strconv.ParseUint(group, 16, 16)
			words = append(words, cpu.Word(value))
		}
	}

	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrap(err, "ParseDump")
	}

	return
}

// ReadDumpFile decodes the text dump at path.
func ReadDumpFile(path string, wordsPerLine int) (words []cpu.Word, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadDumpFile")
	}
	defer f.Close()

	words, err = ParseDump(f, wordsPerLine)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadDumpFile %v", path)
	}

	return
}
