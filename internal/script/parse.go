package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// ParseScript reads one command per line. Blank lines and # comments are
// skipped. The first bad line stops parsing with a *ParseError.
func (p *Parser) ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		norm := normaliseLine(stripComment(raw))
		if norm == "" {
			continue
		}
		cmd, err := p.ParseLine(line, norm)
		if err != nil {
			return nil, err
		}
		cmd.Raw = raw
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func (p *Parser) ParseLine(line int, text string) (Command, error) {
	tokens := tokenise(normaliseLine(text))
	if len(tokens) == 0 {
		return Command{}, &ParseError{Line: line, Msg: "empty command"}
	}

	best, alt := p.registry.matchVerb(tokens[0])
	if best.Canonical == "" || best.Score < 0.5 {
		return Command{}, &ParseError{
			Line:       line,
			Msg:        fmt.Sprintf("unknown command %q", tokens[0]),
			Suggestion: p.registry.closestVerb(tokens[0]),
		}
	}
	if alt != nil && best.Score-alt.Score < 0.05 {
		return Command{}, &ParseError{
			Line: line,
			Msg:  fmt.Sprintf("ambiguous command %q: %s or %s", tokens[0], best.Canonical, alt.Canonical),
		}
	}

	def, _ := p.registry.command(best.Canonical)
	args := tokens[1:]
	if len(args) < def.MinArgs || len(args) > def.MaxArgs {
		return Command{}, &ParseError{Line: line, Msg: argCountMsg(def, len(args))}
	}

	cmd := Command{Line: line, Verb: best.Canonical}
	switch best.Canonical {
	case VerbWalk:
		x, y, ok := mapDirection(args[0])
		if !ok {
			return Command{}, &ParseError{Line: line, Msg: fmt.Sprintf("unknown direction %q", args[0])}
		}
		secs, ok := parseSeconds(args[1])
		if !ok {
			return Command{}, &ParseError{Line: line, Msg: durationMsg(args[1])}
		}
		cmd.DirX, cmd.DirY, cmd.Duration = x, y, secs
	case VerbWait:
		secs, ok := parseSeconds(args[0])
		if !ok {
			return Command{}, &ParseError{Line: line, Msg: durationMsg(args[0])}
		}
		cmd.Duration = secs
	case VerbTick:
		secs, ok := parseSeconds(args[0])
		if !ok || secs < MinStep {
			return Command{}, &ParseError{Line: line, Msg: fmt.Sprintf("tick must be between %gs and %gs, got %q", MinStep, MaxDuration, args[0])}
		}
		cmd.Step = secs
	case VerbExpect:
		field, ok := expectField(args[0])
		if !ok {
			return Command{}, &ParseError{Line: line, Msg: fmt.Sprintf("unknown expect field %q (logs, money, anim, tree)", args[0])}
		}
		cmd.Field, cmd.Want = field, args[1]
	}
	return cmd, nil
}

func durationMsg(token string) string {
	return fmt.Sprintf("bad duration %q (0 to %gs)", token, MaxDuration)
}

func argCountMsg(def CommandDef, got int) string {
	if def.MinArgs == def.MaxArgs {
		return fmt.Sprintf("%s takes %d argument(s), got %d", def.Canonical, def.MinArgs, got)
	}
	return fmt.Sprintf("%s takes %d to %d arguments, got %d", def.Canonical, def.MinArgs, def.MaxArgs, got)
}
