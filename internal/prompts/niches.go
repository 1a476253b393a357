package prompts

import "sort"

// Niche is a target job market that steers every prompt
type Niche struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Focus string `json:"focus"`
}

var niches = map[string]Niche{
	"alternance": {
		Key:   "alternance",
		Name:  "Alternance / Stage",
		Focus: "potentiel, motivation, formation, projets académiques",
	},
	"tech_dev": {
		Key:   "tech_dev",
		Name:  "Tech / Développement",
		Focus: "stack technique, projets GitHub, méthodologies agiles, certifications",
	},
	"data_ai": {
		Key:   "data_ai",
		Name:  "Data / AI",
		Focus: "frameworks ML/DL, projets data, publications, certifications spécialisées",
	},
	"product_manager": {
		Key:   "product_manager",
		Name:  "Product Management",
		Focus: "impact produit, métriques, roadmap, collaboration cross-team",
	},
	"marketing_digital": {
		Key:   "marketing_digital",
		Name:  "Marketing Digital",
		Focus: "ROI, campagnes, outils analytics, growth hacking",
	},
	"commercial": {
		Key:   "commercial",
		Name:  "Commercial / Business Dev",
		Focus: "chiffre d'affaires, deals signés, pipeline, relations clients",
	},
	"startup": {
		Key:   "startup",
		Name:  "Startup / Scale-up",
		Focus: "polyvalence, impact, croissance, environnement agile",
	},
	"finance": {
		Key:   "finance",
		Name:  "Finance / Banque",
		Focus: "certifications (CFA, etc.), modélisation financière, réglementation",
	},
}

// LookupNiche returns the niche registered under key.
func LookupNiche(key string) (Niche, bool) {
	n, ok := niches[key]
	return n, ok
}

// Niches returns every known niche sorted by key.
func Niches() []Niche {
	out := make([]Niche, 0, len(niches))
	for _, n := range niches {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// NicheContext returns the sentence that introduces the target niche in a
// user message. Unknown keys fall back to a generic context.
func NicheContext(key string) string {
	n, ok := LookupNiche(key)
	if !ok {
		return MustGet(MessagesFile, "niche-generic")
	}
	return Format(MustGet(MessagesFile, "niche-context"), map[string]string{
		"Name":  n.Name,
		"Focus": n.Focus,
	})
}
