package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

// Checker finds references that resolve neither to a top-level name nor
// to a name defined inside the referencing declaration.
type Checker struct {
	maxDistance int
	globals     []glob.Glob
}

type Option func(*Checker)

// WithMaxDistance sets the largest edit distance offered as a suggestion.
func WithMaxDistance(distance int) Option {
	return func(c *Checker) { c.maxDistance = distance }
}

// WithKnownGlobals treats every name matching one of globs as in scope.
func WithKnownGlobals(globs ...glob.Glob) Option {
	return func(c *Checker) { c.globals = append(c.globals, globs...) }
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{maxDistance: config.DefaultSuggestionDistance}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckerFromConfig builds a Checker from the project configuration.
func CheckerFromConfig(cfg *config.Config) (*Checker, error) {
	globs := make([]glob.Glob, 0, len(cfg.KnownGlobals))
	for _, pattern := range cfg.KnownGlobals {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("known global %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return NewChecker(WithMaxDistance(cfg.SuggestionDistance), WithKnownGlobals(globs...)), nil
}

// AddMissingNamesSuggestions runs the default Checker.
func AddMissingNamesSuggestions(module *ast.Module) *ast.Module {
	return NewChecker().AddMissingNamesSuggestions(module)
}

// AddMissingNamesSuggestions returns a copy of module whose error list is
// extended with one diagnostic per unresolved reference, in declaration
// order then reference order. Diagnostics already on the list are not
// added again, so re-running over an unchanged module adds nothing.
func (c *Checker) AddMissingNamesSuggestions(module *ast.Module) *ast.Module {
	topLevel := TopLevelNames(module.Body)

	existing := make(map[string]bool, len(module.Errors))
	for _, e := range module.Errors {
		existing[e] = true
	}

	var diagnostics []string
	for _, decl := range module.Body {
		name := declarationName(decl)
		if name == "" {
			continue
		}

		w := &scopeWalker{}
		w.declaration(decl, false)
		known := unique(append(append([]string(nil), topLevel...), w.defined...))
		knownSet := make(map[string]bool, len(known))
		for _, k := range known {
			knownSet[k] = true
		}

		for _, ref := range unique(w.referenced) {
			if knownSet[ref] || c.isGlobal(ref) {
				continue
			}
			msg := c.diagnostic(name, ref, known)
			if !existing[msg] {
				existing[msg] = true
				diagnostics = append(diagnostics, msg)
			}
		}
	}

	if len(diagnostics) == 0 {
		return module
	}
	return module.WithErrors(diagnostics...)
}

func (c *Checker) isGlobal(name string) bool {
	if strings.HasPrefix(name, config.GlobalScopePrefix) {
		return true
	}
	for _, g := range c.globals {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func (c *Checker) diagnostic(declName, ref string, known []string) string {
	suggestions := c.Suggest(ref, known)
	if len(suggestions) == 0 {
		return fmt.Sprintf("failed to find '%s' in scope of '%s'", ref, declName)
	}
	return fmt.Sprintf("failed to find '%s' in scope of '%s', perhaps you meant: %s",
		ref, declName, strings.Join(suggestions, ", "))
}

// Suggest returns the known names within the maximum edit distance of
// name, closest first. Ties keep the order of known.
func (c *Checker) Suggest(name string, known []string) []string {
	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for _, k := range known {
		if d := EditDistance(name, k); d <= c.maxDistance {
			candidates = append(candidates, candidate{k, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.name
	}
	return names
}

// TopLevelNames lists every name visible throughout the module: functions,
// consts, type and tag constructors, import bindings and exposed names.
func TopLevelNames(decls []ast.Declaration) []string {
	var names []string
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.Function:
			names = append(names, d.Name)
		case *ast.Const:
			names = append(names, d.Name)
		case *ast.UnionType:
			for _, tag := range d.Tags {
				names = append(names, tag.Name)
			}
		case *ast.TypeAlias:
			names = append(names, d.Type.Name)
		case *ast.Import:
			for _, module := range d.Modules {
				names = append(names, module.BindingName())
				names = append(names, module.Exposing...)
			}
		}
	}
	return unique(names)
}

func declarationName(decl ast.Declaration) string {
	switch d := decl.(type) {
	case *ast.Function:
		return d.Name
	case *ast.Const:
		return d.Name
	}
	return ""
}

// unique drops repeated names, keeping the first occurrence.
func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
