package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled expressions NewCompiler keeps by default.
const DefaultCacheSize = 100

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures an expr compiler
type CompilerOption func(*exprCompiler)

// WithCache sets the compiled filter cache size. Zero disables caching.
func WithCache(size int) CompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewCompiler creates an expr-based filter compiler with a DefaultCacheSize cache.
func NewCompiler(opts ...CompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
		cache:       newLRUCache[CompiledFilter](DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. The expression must
// produce a boolean.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // item fields are bound at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether item matches. Items that fail to evaluate do not match.
func (f *exprFilter) Evaluate(item Item) bool {
	ok, err := f.Match(item)
	return err == nil && ok
}

func (f *exprFilter) Match(item Item) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(f.helpers, item))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, ItemTitle: item.Title, Err: err}
	}
	// AsBool cannot check expressions built only from item fields, whose types are
	// unknown at compile time.
	b, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemTitle:  item.Title,
			Err:        fmt.Errorf("expression returned %T, want bool", result),
		}
	}
	return b, nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	// Date helpers
	funcs["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	funcs["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	funcs["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	funcs["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	funcs["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	funcs["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	funcs["lower"] = strings.ToLower
	funcs["upper"] = strings.ToUpper
	funcs["now"] = time.Now

	return funcs
}

func createRuntimeEnvironment(helpers map[string]any, item Item) map[string]any {
	env := make(map[string]any, len(helpers)+20)
	maps.Copy(env, helpers)

	env["Item"] = item
	env["hasGenre"] = createHasGenreFunc(item.Genres)
	env["isMovie"] = item.Kind == KindMovie
	env["isShow"] = item.Kind == KindShow

	// Direct properties for convenience
	env["Kind"] = item.Kind
	env["Title"] = item.Title
	env["Year"] = item.Year
	env["Genres"] = item.Genres
	env["IMDBID"] = item.IMDbID
	env["TMDBID"] = item.TMDbID
	env["TVDBID"] = item.TVDbID
	env["Certification"] = item.Certification
	env["Runtime"] = item.Runtime
	env["Rating"] = item.Rating
	env["RatingCount"] = item.RatingCount
	env["Network"] = item.Network
	env["FirstAired"] = item.FirstAired

	return env
}

func createHasGenreFunc(genres []string) func(string) bool {
	return func(genre string) bool {
		return slices.Contains(genres, strings.ToLower(genre))
	}
}
