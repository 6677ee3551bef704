package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/attrs"
)

type opKind string

const (
	opAdd    opKind = "add"
	opSet    opKind = "set"
	opRemove opKind = "remove"
)

// op is one attribute operation parsed from a flag.
type op struct {
	kind    opKind
	element string
	name    string
	values  []string
	hasName bool
	hasVal  bool
}

// opFlag collects operations of one kind into a list shared by all kinds,
// so the list keeps command-line order across --add, --set and --remove.
type opFlag struct {
	kind opKind
	ops  *[]op
}

func (f *opFlag) String() string { return "" }

func (f *opFlag) Type() string { return "op" }

func (f *opFlag) Set(raw string) error {
	o, err := parseOp(f.kind, raw)
	if err != nil {
		return err
	}
	*f.ops = append(*f.ops, o)
	return nil
}

// parseOp parses "alias", "alias:name" or "alias:name=v1,v2".
func parseOp(kind opKind, raw string) (op, error) {
	o := op{kind: kind}

	element, rest, hasName := strings.Cut(raw, ":")
	if element == "" {
		return o, errors.New("A101").
			WithDetailf("--%s %q: missing element alias", kind, raw).
			WithSuggestion(`Use the form "alias:name=value"`)
	}
	o.element = element

	if !hasName {
		if kind != opRemove {
			return o, errors.New("A101").
				WithDetailf("--%s %q: missing attribute name", kind, raw).
				WithSuggestion("Separate the element alias and attribute name with a colon")
		}
		return o, nil
	}

	name, value, hasVal := strings.Cut(rest, "=")
	if name == "" {
		return o, errors.New("A101").
			WithDetailf("--%s %q: empty attribute name", kind, raw)
	}
	o.name = name
	o.hasName = true
	o.hasVal = hasVal
	if hasVal && value != "" {
		o.values = strings.Split(value, ",")
	}
	return o, nil
}

// apply runs o against s.
func (o op) apply(s *attrs.Store) {
	values := make([]any, len(o.values))
	for i, v := range o.values {
		values[i] = v
	}

	switch o.kind {
	case opAdd:
		s.Add(o.element, o.name, values...)
	case opSet:
		s.Set(o.element, o.name, values...)
	case opRemove:
		switch {
		case !o.hasName:
			s.Remove(o.element)
		case !o.hasVal:
			s.RemoveAttr(o.element, o.name)
		default:
			s.RemoveValue(o.element, o.name, o.values)
		}
	}
}

type renderOptions struct {
	element string
	id      string
	verbose bool
}

func renderCmd() *cobra.Command {
	var (
		ops  []op
		opts renderOptions
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Apply attribute operations and print the result",
		Long: `Apply attribute operations to a new store and print each element.

Values are comma-separated. An operation without "=value" on --add or
--set creates a boolean attribute.

Examples:
  vango-attrs render --add 'btn:class=btn,btn-primary' --add 'btn:disabled'
  vango-attrs render --add 'card:id=a' --set 'card:id=b' --element card
  vango-attrs render --add 'x:class=a,b,c' --remove 'x:class=b'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), ops, opts)
		},
	}

	cmd.Flags().VarP(&opFlag{kind: opAdd, ops: &ops}, "add", "a", "Merge an attribute: alias:name[=v1,v2]")
	cmd.Flags().VarP(&opFlag{kind: opSet, ops: &ops}, "set", "s", "Replace an attribute: alias:name[=v1,v2]")
	cmd.Flags().VarP(&opFlag{kind: opRemove, ops: &ops}, "remove", "r", "Remove an element, attribute or value: alias[:name[=v1,v2]]")
	cmd.Flags().StringVarP(&opts.element, "element", "e", "", "Print only this element, without the alias prefix")
	cmd.Flags().StringVar(&opts.id, "id", "", "Store identifier used in debug logs")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log dropped input to stderr")

	return cmd
}

func runRender(out, errOut io.Writer, ops []op, opts renderOptions) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	s := attrs.NewWithConfig(attrs.Config{ID: opts.id, Logger: logger})
	for _, o := range ops {
		o.apply(s)
	}

	if opts.element != "" {
		if !s.Has(opts.element) {
			return errors.New("A102").
				WithDetailf("no attributes recorded for %q", opts.element)
		}
		_, err := fmt.Fprintln(out, s.Render(opts.element))
		return err
	}

	for _, element := range s.Elements() {
		if _, err := fmt.Fprintf(out, "%s: %s\n", element, s.Render(element)); err != nil {
			return err
		}
	}
	return nil
}
