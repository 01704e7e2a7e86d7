// Package sortcli is the command line surface of sortkit.
// Every command builds a container from its input, sorts it and writes the result.
package sortcli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/sortkit/pkg/collection"
	"go.llib.dev/sortkit/pkg/compare"
)

const (
	ErrMissingInput  errorkit.Error = "ErrMissingInput"
	ErrInvalidNumber errorkit.Error = "ErrInvalidNumber"
	ErrInvalidFormat errorkit.Error = "ErrInvalidFormat"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvFormat is the environment variable that sets the default output format.
const EnvFormat = "SORTKIT_FORMAT"

func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("numbers", NumbersCommand{})
	m.Handle("chars", CharsCommand{})
	m.Handle("list", ListCommand{})
	m.Handle("demo", DemoCommand{})
	return &m
}

///////////////////////////////////////////////////////////////////////////////////////////////////

type NumbersCommand struct {
	Format string `flag:"format" env:"SORTKIT_FORMAT" desc:"output format: text (default) or json"`
	Desc   bool   `flag:"desc" desc:"sort in descending order"`
}

func (cmd NumbersCommand) Summary() string {
	return "sorts the numbers given as arguments (use -- before a leading negative number)"
}

func (cmd NumbersCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "numbers"))
	if err := checkFormat(cmd.Format); err != nil {
		badRequest(ctx, w, err)
		return
	}
	vs, err := parseNumbers(r.Args)
	if err != nil {
		badRequest(ctx, w, err)
		return
	}
	var cmp compare.Func[float64] = compare.Numbers[float64]
	if cmd.Desc {
		cmp = compare.Reverse(cmp)
	}
	numbers := collection.New(cmp, vs...)
	numbers.Sort()
	logger.Debug(ctx, "numbers sorted", logging.Field("length", numbers.Len()))

	if err := write(w, cmd.Format, "numbers", numbers.Data, formatNumbers(numbers.Data)); err != nil {
		failure(ctx, w, err)
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////////

type CharsCommand struct {
	Format string `flag:"format" env:"SORTKIT_FORMAT" desc:"output format: text (default) or json"`
	Desc   bool   `flag:"desc" desc:"sort in descending order"`

	Text string `arg:"0" required:"true" desc:"the text whose characters are sorted"`
}

func (cmd CharsCommand) Summary() string {
	return "sorts the characters of a text by code point"
}

func (cmd CharsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "chars"))
	if err := checkFormat(cmd.Format); err != nil {
		badRequest(ctx, w, err)
		return
	}
	chars := collection.NewCharacters(cmd.Text)
	chars.Sort()
	if cmd.Desc {
		slices.Reverse(chars.Data)
	}
	logger.Debug(ctx, "characters sorted", logging.Field("length", chars.Len()))

	if err := write(w, cmd.Format, "characters", chars.String(), chars.String()); err != nil {
		failure(ctx, w, err)
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////////

type ListCommand struct {
	Format string `flag:"format" env:"SORTKIT_FORMAT" desc:"output format: text (default) or json"`
	Desc   bool   `flag:"desc" desc:"sort in descending order"`
}

func (cmd ListCommand) Summary() string {
	return "appends the numbers to a linked list, sorts it and prints one value per line"
}

func (cmd ListCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "list"))
	if err := checkFormat(cmd.Format); err != nil {
		badRequest(ctx, w, err)
		return
	}
	vs, err := parseNumbers(r.Args)
	if err != nil {
		badRequest(ctx, w, err)
		return
	}
	var ll collection.NumberList[float64]
	for _, v := range vs {
		ll.Add(v)
	}
	if cmd.Desc {
		ll.SortFunc(compare.Reverse(compare.Numbers[float64]))
	} else {
		ll.Sort()
	}
	logger.Debug(ctx, "linked list sorted", logging.Field("length", ll.Len()))

	if isJSON(cmd.Format) {
		err = writeJSON(w, "list", ll.ToSlice())
	} else {
		err = ll.Print(w)
	}
	if err != nil {
		failure(ctx, w, err)
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// DemoCommand runs the reference scenario with fixed input.
type DemoCommand struct {
	Format string `flag:"format" env:"SORTKIT_FORMAT" desc:"output format: text (default) or json"`
}

func (cmd DemoCommand) Summary() string {
	return "sorts a fixed set of characters, numbers and a linked list"
}

func (cmd DemoCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "demo"))
	if err := checkFormat(cmd.Format); err != nil {
		badRequest(ctx, w, err)
		return
	}

	characters := collection.NewCharacters("XaabZZkl")
	numbers := collection.NewNumbers(10, 3, -5, 0)
	var linkedList collection.NumberList[int]
	linkedList.Add(500)
	linkedList.Add(-10)
	linkedList.Add(-3)
	linkedList.Add(4)
	linkedList.Add(68)

	characters.Sort()
	numbers.Sort()
	linkedList.Sort()
	logger.Info(ctx, "demo containers sorted")

	if err := cmd.write(w, characters, numbers, &linkedList); err != nil {
		failure(ctx, w, err)
	}
}

func (cmd DemoCommand) write(w io.Writer, characters *collection.Characters, numbers *collection.Numbers[int], ll *collection.NumberList[int]) error {
	if isJSON(cmd.Format) {
		return json.NewEncoder(w).Encode(demoDTO{
			Characters: characters.String(),
			Numbers:    numbers.Data,
			LinkedList: ll.ToSlice(),
		})
	}
	if _, err := fmt.Fprintf(w, "characters => %s\nnumbers => %v\n\n=====\nlinkedList =>\n", characters, numbers.Data); err != nil {
		return err
	}
	if err := ll.Print(w); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "=====\n")
	return err
}

type demoDTO struct {
	Characters string `json:"characters"`
	Numbers    []int  `json:"numbers"`
	LinkedList []int  `json:"linkedList"`
}

///////////////////////////////////////////////////////////////////////////////////////////////////

func parseNumbers(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, ErrMissingInput.F("at least one number is expected")
	}
	vs := make([]float64, 0, len(args))
	for _, raw := range args {
		v, err := convkit.Parse[float64](raw)
		if err != nil {
			return nil, ErrInvalidNumber.F("%q is not a number", raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidNumber.F("%q is not a finite number", raw)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func formatNumbers(vs []float64) string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(out, " ")
}

func checkFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON:
		return nil
	default:
		return ErrInvalidFormat.F("%q is not a supported format (%s, %s)", format, FormatText, FormatJSON)
	}
}

func isJSON(format string) bool { return format == FormatJSON }

func write(w io.Writer, format, key string, data any, text string) error {
	if isJSON(format) {
		return writeJSON(w, key, data)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func writeJSON(w io.Writer, key string, data any) error {
	return json.NewEncoder(w).Encode(map[string]any{key: data})
}

func badRequest(ctx context.Context, w cli.Response, err error) {
	logger.Debug(ctx, "invalid input", logging.ErrField(err))
	w.ExitCode(cli.ExitCodeBadRequest)
	fmt.Fprintln(errOut(w), err.Error())
}

func failure(ctx context.Context, w cli.Response, err error) {
	logger.Error(ctx, "failed to write the sorted output", logging.ErrField(err))
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintln(errOut(w), err.Error())
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return w
}
