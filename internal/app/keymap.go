package app

// Footer help per focused panel. User-facing strings are in Swedish like
// the rest of the app.
const (
	helpTopics     = "tab: byt panel • j/k: välj ämne • 1/2/3: känslighet • a: anonymiserad text • q: avsluta"
	helpTranscript = "tab: byt panel • j/k: rulla • g/G: början/slut • a: anonymiserad text • q: avsluta"
)
