// Package driver runs line-oriented command scripts against an ordered set.
//
// The first line of a script names the element type (Integer or String).
// Every following line is one command, and produces exactly one output
// line:
//
//	Insert:<value>    true, or false for a duplicate
//	Contains:<value>  true or false
//	PrintTree         the pre-order dump of the tree
//
// Malformed lines produce a diagnostic line and processing continues.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"rbset/element"
	"rbset/rbtree"
)

const (
	CmdInsert   = "Insert"
	CmdContains = "Contains"
	CmdPrint    = "PrintTree"
)

var ErrEmptyInput = errors.New("driver: input has no element type line")

var log = logrus.WithField("pkg", "driver")

// Run reads a script from in and writes one result line per command to
// out. Per-line problems are reported in the output; only I/O failures and
// a script without a type line are returned as errors.
func Run(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	tag, more, err := readLine(r)
	if err != nil {
		return errors.Wrap(err, "unable to read element type")
	}
	if !more {
		return ErrEmptyInput
	}

	kind, err := element.ParseKind(tag)
	if err != nil {
		log.WithField("tag", tag).Debug("unsupported element type")
		fmt.Fprintf(w, "Cannot work with the object %s. Only works for objects %s and %s.\n",
			tag, element.Integer, element.String)
		return flush(w)
	}

	switch kind {
	case element.Integer:
		err = run(r, w, element.ParseInteger)
	case element.String:
		err = run(r, w, element.ParseString)
	}

	// earlier results are written out even when reading stopped early
	if ferr := flush(w); err == nil {
		err = ferr
	}
	return err
}

type session[E any] struct {
	tree  *rbtree.Tree[E]
	parse func(string) (E, error)
	w     io.Writer
}

func run[E constraints.Ordered](r *bufio.Reader, w io.Writer, parse func(string) (E, error)) error {
	s := &session[E]{
		tree:  rbtree.New[E](),
		parse: parse,
		w:     w,
	}

	for lineNo := 2; ; lineNo++ {
		line, more, err := readLine(r)
		if err != nil {
			return errors.Wrapf(err, "unable to read line %d", lineNo)
		}
		if !more {
			return nil
		}
		s.exec(lineNo, line)
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// Lines have no length limit. more is false once the input is exhausted; a
// final line without a terminator is still returned.
func readLine(r *bufio.Reader) (line string, more bool, err error) {
	line, err = r.ReadString('\n')
	switch {
	case err == io.EOF:
		if line == "" {
			return "", false, nil
		}
		err = nil
	case err != nil:
		return "", false, err
	default:
		line = line[:len(line)-1]
	}
	return strings.TrimSuffix(line, "\r"), true, nil
}

func (s *session[E]) exec(lineNo int, line string) {
	fields := splitFields(line)
	llog := log.WithField("line", lineNo)

	switch {
	case fields[0] == CmdInsert && len(fields) == 2:
		v, err := s.parse(fields[1])
		if err != nil {
			llog.WithError(err).Debug("bad insert value")
			fmt.Fprintf(s.w, "Error in Line: %s:%s\n", fields[0], fields[1])
			return
		}
		ok, err := s.tree.Insert(v)
		if err != nil {
			fmt.Fprintf(s.w, "Error in insert: %s\n", err)
			return
		}
		fmt.Fprintf(s.w, "%t\n", ok)

	case fields[0] == CmdPrint:
		fmt.Fprintf(s.w, "%s\n", s.tree)

	case fields[0] == CmdContains && len(fields) == 2:
		v, err := s.parse(fields[1])
		if err != nil {
			llog.WithError(err).Debug("bad contains value")
			fmt.Fprintf(s.w, "Error in Line: %s:%s\n", fields[0], fields[1])
			return
		}
		fmt.Fprintf(s.w, "%t\n", s.tree.Contains(v))

	default:
		llog.WithField("command", fields[0]).Debug("malformed line")
		fmt.Fprintf(s.w, "Error in Line: %s\n", fields[0])
	}
}

// splitFields splits on ':' and drops trailing empty fields, so
// "Insert:" has one field and "Insert:a:" has two. The result always has at
// least one element.
func splitFields(line string) []string {
	fields := strings.Split(line, ":")
	for len(fields) > 1 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "unable to write output")
	}
	return nil
}
