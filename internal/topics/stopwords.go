package topics

// Swedish stopwords: pronouns, auxiliaries, prepositions, conjunctions and
// the discourse fillers that dominate spoken interviews. The set is fixed at
// compile time and never mutated.
var stopwords = makeSet(
	// Function words.
	"och", "det", "att", "i", "en", "jag", "hon", "som", "han", "på",
	"den", "med", "var", "sig", "för", "så", "till", "är", "men", "ett",
	"om", "hade", "de", "av", "icke", "mig", "du", "henne", "då", "sin",
	"nu", "har", "inte", "hans", "honom", "skulle", "hennes", "där",
	"min", "man", "ej", "vid", "kunde", "något", "från", "ut", "när",
	"efter", "upp", "vi", "dem", "vara", "vad", "över", "än", "dig",
	"kan", "sina", "här", "ha", "mot", "alla", "under", "någon", "eller",
	"allt", "mycket", "sedan", "ju", "denna", "själv", "detta", "åt",
	"utan", "varit", "hur", "ingen", "mitt", "ni", "bli", "blev", "oss",
	"din", "dessa", "några", "deras", "blir", "mina", "samma", "vilken",
	"er", "sådan", "vår", "blivit", "dess", "inom", "mellan", "sådant",
	"varför", "varje", "vilka", "ditt", "vem", "vilket", "sitta",
	"sådana", "vart", "dina", "vars", "vårt", "våra", "ert", "era",
	"vilkas",
	// Auxiliary and light verbs common in speech.
	"vill", "ville", "kommer", "kom", "går", "gick", "gå", "göra",
	"gör", "gjorde", "får", "få", "fick", "säga", "säger", "sa", "sade",
	"tror", "tycker", "tänker", "vet", "ser", "se", "såg", "kunna",
	// Discourse fillers and hedges.
	"ja", "nej", "jo", "okej", "ok", "liksom", "alltså", "asså", "typ",
	"bara", "lite", "väl", "nog", "kanske", "också", "även", "just",
	"precis", "eh", "öh", "hmm", "mm", "aa", "nja", "nä",
	// Temporal fillers.
	"idag", "igår", "imorgon", "sen", "igen", "alltid", "aldrig",
	"ofta", "ibland",
)

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
