package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/AdamBrianBright/callbackreturn/internal/runner"
)

type palette struct {
	path    *color.Color
	pos     *color.Color
	message *color.Color
	rule    *color.Color
	err     *color.Color
	summary *color.Color
}

func newPalette(useColor bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		pos:     color.New(color.FgCyan),
		message: color.New(color.FgRed),
		rule:    color.New(color.Faint),
		err:     color.New(color.FgRed, color.Bold),
		summary: color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.pos, p.message, p.rule, p.err, p.summary} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Text writes one line per diagnostic, `path:line:col: message (rule)`, one line per file
// that could not be checked, and a summary when anything was found.
func Text(w io.Writer, results []runner.FileResult, useColor bool) error {
	p := newPalette(useColor)

	var problems, failedFiles int
	for _, res := range results {
		if res.Err != nil {
			failedFiles++
			if _, err := fmt.Fprintf(w, "%s: %s\n", p.path.Sprint(res.Path), p.err.Sprint(res.Err)); err != nil {
				return err
			}
			continue
		}
		if len(res.Diagnostics) > 0 {
			failedFiles++
		}
		for _, d := range res.Diagnostics {
			problems++
			_, err := fmt.Fprintf(w, "%s:%s: %s %s\n",
				p.path.Sprint(res.Path),
				p.pos.Sprintf("%d:%d", d.Line, d.Column),
				p.message.Sprint(d.Message),
				p.rule.Sprintf("(%s)", d.Rule),
			)
			if err != nil {
				return err
			}
		}
	}

	if failedFiles == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", p.summary.Sprintf("%s in %s", plural(problems, "problem"), plural(failedFiles, "file")))

	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
