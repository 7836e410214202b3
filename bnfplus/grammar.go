package bnfplus

import (
	"sync"

	"github.com/fiskmans/patternmatcher"
)

const identifierChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-"

var (
	grammarOnce sync.Once
	grammarCat  *patternmatcher.Catalogue[fragID]
)

// grammar returns the bootstrap meta-grammar's catalogue, building it on
// first use. A package-level sync.Once keeps concurrent first use from
// racing two goroutines into building the grammar twice.
func grammar() *patternmatcher.Catalogue[fragID] {
	grammarOnce.Do(buildGrammar)
	return grammarCat
}

// buildGrammar builds every fragment named in the BNF below:
//
//	<doc>          ::= { <line> }
//	<line>         ::= <decl> | <comment> | <empty-line>
//	<decl>         ::= [ws] <identifier> [ws] ":" <values> [nl]
//	<values>       ::= ( <nl> <value> )+
//	<value>        ::= ( <ws> <identifier> <repeat?> )+
//	<repeat?>      ::= "" | "?" | "*" | "+"
//	<identifier>   ::= [A-Za-z0-9-]+
//	<comment>      ::= [ws] "#" { non-newline } [nl]
//	<empty-line>   ::= [ws] nl
func buildGrammar() {
	cat := patternmatcher.New[fragID]()

	must := func(f *patternmatcher.Fragment, err error) *patternmatcher.Fragment {
		if err != nil {
			panic(err)
		}
		return f
	}

	docPH := must(cat.EmplacePlaceholder(Document))
	spacePH := must(cat.EmplacePlaceholder(Space))
	keyPH := must(cat.EmplacePlaceholder(Key))
	keyCharPH := must(cat.EmplacePlaceholder(KeyChar))
	declPH := must(cat.EmplacePlaceholder(Declaration))
	valuePH := must(cat.EmplacePlaceholder(Value))
	valuePartPH := must(cat.EmplacePlaceholder(ValuePart))
	optMulPH := must(cat.EmplacePlaceholder(OptionalMultiplier))
	mulPH := must(cat.EmplacePlaceholder(Multiplier))
	mulPlusPH := must(cat.EmplacePlaceholder(MultiplierPlus))
	mulStarPH := must(cat.EmplacePlaceholder(MultiplierStar))
	mulQuestionPH := must(cat.EmplacePlaceholder(MultiplierQuestion))
	commentPH := must(cat.EmplacePlaceholder(Comment))
	emptyLinePH := must(cat.EmplacePlaceholder(EmptyLine))
	linePH := must(cat.EmplacePlaceholder(Line))

	keyCharPH.Define(patternmatcher.NewAlternative(cat.BytesOf(identifierChars)...))

	wsChar := patternmatcher.NewAlternative(cat.LookupByte(' '), cat.LookupByte('\t'))
	spacePH.Define(patternmatcher.NewRepeat(wsChar, patternmatcher.Range(0, patternmatcher.Unbounded)))

	keyPH.Define(patternmatcher.NewRepeat(keyCharPH, patternmatcher.Range(1, patternmatcher.Unbounded)))

	// identifier is a second, anonymous fragment with the same shape as Key:
	// ValuePart uses its own fragment (rather than reusing the Key pointer)
	// so that Find/SearchFor by fragment identity can still tell a
	// declaration's own key apart from an identifier referenced inside its
	// value.
	identifier := patternmatcher.NewRepeat(keyCharPH, patternmatcher.Range(1, patternmatcher.Unbounded))

	mulPlusPH.Define(patternmatcher.NewLiteral('+'))
	mulStarPH.Define(patternmatcher.NewLiteral('*'))
	mulQuestionPH.Define(patternmatcher.NewLiteral('?'))
	mulPH.Define(patternmatcher.NewAlternative(mulPlusPH, mulStarPH, mulQuestionPH))
	optMulPH.Define(patternmatcher.NewRepeat(mulPH, patternmatcher.Range(0, 1)))

	// A value part's leading whitespace must be at least one character: if
	// it were allowed to be zero-width, an unindented line that actually
	// starts the next declaration would parse as one more value of the
	// current one instead, and the Repeat over value lines would only back
	// off after having already swallowed it.
	requiredWS := patternmatcher.NewRepeat(wsChar, patternmatcher.Range(1, patternmatcher.Unbounded))
	valuePartPH.Define(patternmatcher.NewSequence(requiredWS, identifier, optMulPH))

	oneLineOfParts := patternmatcher.NewRepeat(valuePartPH, patternmatcher.Range(1, patternmatcher.Unbounded))
	valueLine := patternmatcher.NewSequence(cat.LookupByte('\n'), oneLineOfParts)
	valuePH.Define(patternmatcher.NewRepeat(valueLine, patternmatcher.Range(1, patternmatcher.Unbounded)))

	declPH.Define(patternmatcher.NewSequence(spacePH, keyPH, spacePH, cat.LookupByte(':'), valuePH))

	optionalNL := patternmatcher.NewRepeat(cat.LookupByte('\n'), patternmatcher.Range(0, 1))
	commentPH.Define(patternmatcher.NewSequence(
		spacePH,
		cat.LookupByte('#'),
		patternmatcher.NewRepeat(patternmatcher.NewAlternative(cat.BytesNotOf("\n")...), patternmatcher.Range(0, patternmatcher.Unbounded)),
		optionalNL,
	))

	emptyLinePH.Define(patternmatcher.NewSequence(spacePH, cat.LookupByte('\n')))

	linePH.Define(patternmatcher.NewAlternative(declPH, commentPH, emptyLinePH))

	docPH.Define(patternmatcher.NewRepeat(linePH, patternmatcher.Range(0, patternmatcher.Unbounded)))

	grammarCat = cat
}
